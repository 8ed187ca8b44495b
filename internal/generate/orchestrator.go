package generate

import (
	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

// ZoneLookupFunc is invoked for each Application ingress reference naming a
// zone absent from the snapshot (spec section 4.2.4 step 2: "log and
// skip"). Controllers pass a function that logs at the call site so the
// generator package stays free of logging dependencies.
type ZoneLookupFunc func(zoneName string)

// Generate is the translation orchestrator (C3): it builds the common
// metadata for app, invokes each generator in the fixed order deployment →
// service → service-account → ingress, and concatenates their output. zones
// is a point-in-time snapshot of the zone cache; onZoneMiss may be nil.
func Generate(app *yakupv1.Application, zones map[string]*yakupv1.IngressZone, onZoneMiss ZoneLookupFunc) ([]Operation, error) {
	meta := newCommonMeta(app)

	ops := make([]Operation, 0, 4+len(zones))

	deployment, err := generateDeployment(app, meta)
	if err != nil {
		return nil, err
	}
	ops = append(ops, deployment)

	service, err := generateService(app, meta)
	if err != nil {
		return nil, err
	}
	ops = append(ops, service)

	serviceAccount, err := generateServiceAccount(app, meta)
	if err != nil {
		return nil, err
	}
	ops = append(ops, serviceAccount)

	ingressOps, err := generateIngress(app, meta, zones, onZoneMiss)
	if err != nil {
		return nil, err
	}
	ops = append(ops, ingressOps...)

	return ops, nil
}
