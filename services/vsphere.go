// ABOUTME: vSphere client discovering host hardware via govmomi
// ABOUTME: Suggests candidate node profiles from existing cluster hosts

package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/vmware/govmomi"
	"github.com/vmware/govmomi/find"
	"github.com/vmware/govmomi/object"
	"github.com/vmware/govmomi/vim25/mo"
	"golang.org/x/sync/errgroup"

	"serversizer/models"
)

// VSphereCredentials holds vCenter connection info.
type VSphereCredentials struct {
	Host       string
	Username   string
	Password   string
	Datacenter string
	Insecure   bool
}

// VSphereClient wraps govmomi for host inventory discovery. The
// discovered host hardware seeds candidate node profiles so planners
// can size against servers they already run.
type VSphereClient struct {
	creds      VSphereCredentials
	client     *govmomi.Client
	finder     *find.Finder
	datacenter *object.Datacenter
}

// NewVSphereClient creates a new vSphere client.
func NewVSphereClient(creds VSphereCredentials) *VSphereClient {
	return &VSphereClient{creds: creds}
}

// Connect establishes the vCenter session and resolves the datacenter.
func (v *VSphereClient) Connect(ctx context.Context) error {
	host := v.creds.Host
	if !strings.HasPrefix(host, "https://") && !strings.HasPrefix(host, "http://") {
		host = "https://" + host
	}

	u, err := url.Parse(host + "/sdk")
	if err != nil {
		return fmt.Errorf("invalid vCenter URL '%s': %w", v.creds.Host, err)
	}
	u.User = url.UserPassword(v.creds.Username, v.creds.Password)

	client, err := govmomi.NewClient(ctx, u, v.creds.Insecure)
	if err != nil {
		return fmt.Errorf("connecting to vCenter at %s: %w", v.creds.Host, err)
	}

	v.client = client
	v.finder = find.NewFinder(client.Client, true)

	dc, err := v.finder.Datacenter(ctx, v.creds.Datacenter)
	if err != nil {
		return fmt.Errorf("resolving datacenter '%s': %w", v.creds.Datacenter, err)
	}
	v.datacenter = dc
	v.finder.SetDatacenter(dc)

	slog.Info("vSphere connected", "host", v.creds.Host, "datacenter", v.creds.Datacenter)
	return nil
}

// Disconnect closes the vCenter session.
func (v *VSphereClient) Disconnect(ctx context.Context) error {
	if v.client != nil {
		return v.client.Logout(ctx)
	}
	return nil
}

// DiscoverHosts inventories every cluster's hosts concurrently and
// returns their hardware summaries sorted by cluster then name.
func (v *VSphereClient) DiscoverHosts(ctx context.Context) ([]models.HostInfo, error) {
	clusters, err := v.finder.ClusterComputeResourceList(ctx, "*")
	if err != nil {
		return nil, fmt.Errorf("listing clusters: %w", err)
	}

	var mu sync.Mutex
	var hosts []models.HostInfo

	g, gctx := errgroup.WithContext(ctx)
	for _, cluster := range clusters {
		g.Go(func() error {
			clusterHosts, err := v.clusterHosts(gctx, cluster)
			if err != nil {
				return fmt.Errorf("inventorying cluster %s: %w", cluster.Name(), err)
			}
			mu.Lock()
			hosts = append(hosts, clusterHosts...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(hosts, func(i, j int) bool {
		if hosts[i].Cluster != hosts[j].Cluster {
			return hosts[i].Cluster < hosts[j].Cluster
		}
		return hosts[i].Name < hosts[j].Name
	})

	slog.Info("vSphere host discovery complete", "clusters", len(clusters), "hosts", len(hosts))
	return hosts, nil
}

// clusterHosts collects hardware summaries for one cluster.
func (v *VSphereClient) clusterHosts(ctx context.Context, cluster *object.ClusterComputeResource) ([]models.HostInfo, error) {
	var clusterMo mo.ClusterComputeResource
	if err := cluster.Properties(ctx, cluster.Reference(), []string{"host", "datastore"}, &clusterMo); err != nil {
		return nil, fmt.Errorf("getting cluster properties: %w", err)
	}

	datastoreGB, err := v.clusterDatastoreGB(ctx, clusterMo)
	if err != nil {
		return nil, err
	}
	perHostDatastoreGB := 0.0
	if n := len(clusterMo.Host); n > 0 {
		perHostDatastoreGB = datastoreGB / float64(n)
	}

	hosts := make([]models.HostInfo, 0, len(clusterMo.Host))
	for _, hostRef := range clusterMo.Host {
		host := object.NewHostSystem(v.client.Client, hostRef)

		var hostMo mo.HostSystem
		if err := host.Properties(ctx, host.Reference(), []string{"summary", "runtime"}, &hostMo); err != nil {
			return nil, fmt.Errorf("getting host properties: %w", err)
		}

		hosts = append(hosts, models.HostInfo{
			Name:        host.Name(),
			Cluster:     cluster.Name(),
			CPUCores:    int(hostMo.Summary.Hardware.NumCpuCores),
			CPUPackages: int(hostMo.Summary.Hardware.NumCpuPkgs),
			MemoryGiB:   float64(hostMo.Summary.Hardware.MemorySize) / (1 << 30),
			DatastoreGB: perHostDatastoreGB,
			PoweredOn:   hostMo.Runtime.PowerState == "poweredOn",
		})
	}

	return hosts, nil
}

// clusterDatastoreGB sums the capacity of the cluster's datastores.
func (v *VSphereClient) clusterDatastoreGB(ctx context.Context, clusterMo mo.ClusterComputeResource) (float64, error) {
	var total float64
	for _, dsRef := range clusterMo.Datastore {
		ds := object.NewDatastore(v.client.Client, dsRef)

		var dsMo mo.Datastore
		if err := ds.Properties(ctx, ds.Reference(), []string{"summary"}, &dsMo); err != nil {
			return 0, fmt.Errorf("getting datastore properties: %w", err)
		}
		total += float64(dsMo.Summary.Capacity) / 1e9
	}
	return total, nil
}

// SuggestProfiles collapses discovered hosts into distinct candidate
// node profiles, one per unique hardware shape. Disk layout is
// approximated from per-host datastore capacity assuming the 2U
// chassis maximum.
func SuggestProfiles(hosts []models.HostInfo) []models.NodeProfile {
	type shape struct {
		cores    int
		packages int
		memory   int
	}
	seen := make(map[shape]bool)
	var profiles []models.NodeProfile

	for _, h := range hosts {
		if !h.PoweredOn || h.CPUPackages == 0 {
			continue
		}
		s := shape{cores: h.CPUCores, packages: h.CPUPackages, memory: int(h.MemoryGiB)}
		if seen[s] {
			continue
		}
		seen[s] = true

		disks := models.FormFactor2U.MaxDisks()
		diskCapacityGB := 0.0
		if h.DatastoreGB > 0 {
			diskCapacityGB = h.DatastoreGB / float64(disks)
		}

		profiles = append(profiles, models.NodeProfile{
			CoresPerProcessor: h.CPUCores / h.CPUPackages,
			Processors:        h.CPUPackages,
			MemoryGiB:         h.MemoryGiB,
			Disks:             disks,
			DiskCapacityGB:    diskCapacityGB,
			FormFactor:        models.FormFactor2U,
		})
	}

	return profiles
}
