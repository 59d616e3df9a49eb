// ABOUTME: HTTP handler for vSphere host discovery
// ABOUTME: Inventories existing hosts and suggests node profiles

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"serversizer/models"
	"serversizer/services"
)

// discoveryCacheKey is the cache key for vSphere discovery responses.
const discoveryCacheKey = "vsphere:discovery"

// DiscoverInfrastructure handles GET /api/v1/infrastructure/discover.
// It connects to vCenter, inventories cluster hosts, and suggests node
// profiles matching the hardware already in the datacenter.
func (h *Handler) DiscoverInfrastructure(w http.ResponseWriter, r *http.Request) {
	if h.vsphereClient == nil {
		writeError(w, "vSphere not configured. Set VSPHERE_HOST, VSPHERE_USERNAME, VSPHERE_PASSWORD, and VSPHERE_DATACENTER environment variables.", http.StatusServiceUnavailable)
		return
	}

	if cached, found := h.cache.Get(discoveryCacheKey); found {
		resp := cached.(models.DiscoveryResponse)
		resp.Cached = true
		writeJSON(w, http.StatusOK, resp)
		return
	}

	ctx := r.Context()
	if err := h.vsphereClient.Connect(ctx); err != nil {
		slog.Error("vSphere connection failed", "error", err)
		writeError(w, "Failed to connect to vSphere: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	defer h.vsphereClient.Disconnect(ctx)

	hosts, err := h.vsphereClient.DiscoverHosts(ctx)
	if err != nil {
		slog.Error("vSphere discovery failed", "error", err)
		writeError(w, "Failed to inventory vSphere hosts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := models.DiscoveryResponse{
		Datacenter: h.cfg.VSphereDatacenter,
		Hosts:      hosts,
		Suggested:  services.SuggestProfiles(hosts),
		Timestamp:  time.Now(),
	}

	ttl := time.Duration(h.cfg.VSphereCacheTTL) * time.Second
	h.cache.SetWithTTL(discoveryCacheKey, resp, ttl)

	writeJSON(w, http.StatusOK, resp)
}
