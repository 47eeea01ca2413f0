// Package endpoints resolves service endpoints from a static
// service/region table and builds request URLs by addressing style.
package endpoints

import (
	"sort"

	"github.com/Tim020/botocore/botoerr"
)

// Addressing styles understood by Endpoint.URL.
const (
	StylePath      = "path"
	StyleSubdomain = "subdomain"
)

// Endpoint is a resolved service location.
type Endpoint struct {
	Service string
	Region  string
	Host    string
}

// Resolver maps service name to region to host.
type Resolver struct {
	table map[string]map[string]string
}

// NewResolver creates a Resolver over a service → region → host table.
func NewResolver(table map[string]map[string]string) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the endpoint for service in region. A service with no
// host in that region, or a service the table does not know at all, is a
// ServiceNotInRegionError.
func (r *Resolver) Resolve(service, region string) (Endpoint, error) {
	regions, ok := r.table[service]
	if !ok {
		return Endpoint{}, botoerr.NewServiceNotInRegionError(service, region)
	}
	host, ok := regions[region]
	if !ok {
		return Endpoint{}, botoerr.NewServiceNotInRegionError(service, region)
	}
	return Endpoint{Service: service, Region: region, Host: host}, nil
}

// Regions returns the sorted regions in which service is available.
func (r *Resolver) Regions(service string) []string {
	regions := make([]string, 0, len(r.table[service]))
	for region := range r.table[service] {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	return regions
}

// URL builds the request URL for the endpoint in the given addressing
// style. Styles other than path and subdomain are an
// UnknownServiceStyleError.
func (e Endpoint) URL(style, scheme string) (string, error) {
	if scheme == "" {
		scheme = "https"
	}
	switch style {
	case StylePath:
		return scheme + "://" + e.Host + "/" + e.Service, nil
	case StyleSubdomain:
		return scheme + "://" + e.Service + "." + e.Host, nil
	default:
		return "", botoerr.NewUnknownServiceStyleError(style)
	}
}
