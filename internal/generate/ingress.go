package generate

import (
	"fmt"
	"sort"
	"strings"

	networkingv1 "k8s.io/api/networking/v1"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

const ingressZoneLabel = "yakup.ibidem.no/ingress_zone"

// generateIngress builds the Ingress Operations for app against the current
// zone snapshot (spec section 4.2.4): one CreateOrUpdate per referenced,
// resolvable zone, followed by a DeleteIfExists for every zone present in
// the cache but no longer referenced. A reference to a zone absent from the
// snapshot is logged by the caller and silently skipped here.
func generateIngress(app *yakupv1.Application, meta commonMeta, zones map[string]*yakupv1.IngressZone, skipped func(zoneName string)) ([]Operation, error) {
	stale := make(map[string]struct{}, len(zones))
	for name := range zones {
		stale[name] = struct{}{}
	}

	var ops []Operation

	if app.Spec.Ports != nil && app.Spec.Ports.HTTP != nil {
		for _, ref := range app.Spec.Ports.HTTP.Ingress {
			zone, ok := zones[ref.Zone]
			if !ok {
				if skipped != nil {
					skipped(ref.Zone)
				}
				continue
			}

			op, err := buildIngress(app, meta, zone, ref)
			if err != nil {
				return nil, processingErrorf("ingress", "ingress entry for zone %q on application %q: %w", ref.Zone, app.Name, err)
			}
			ops = append(ops, op)
			delete(stale, ref.Zone)
		}
	}

	staleNames := make([]string, 0, len(stale))
	for name := range stale {
		staleNames = append(staleNames, name)
	}
	sort.Strings(staleNames)

	for _, zoneName := range staleNames {
		op, err := staleIngress(meta, zoneName)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}

	return ops, nil
}

func buildIngress(app *yakupv1.Application, meta commonMeta, zone *yakupv1.IngressZone, ref yakupv1.IngressRef) (Operation, error) {
	host := strings.ReplaceAll(zone.Spec.Host, "{appname}", app.Name)

	pathType := networkingv1.PathTypePrefix
	if ref.PathType != nil && *ref.PathType == yakupv1.PathTypeExact {
		pathType = networkingv1.PathTypeExact
	}

	paths := ref.Paths
	if len(paths) == 0 {
		paths = []string{"/"}
	}

	httpPaths := make([]networkingv1.HTTPIngressPath, 0, len(paths))
	for _, p := range paths {
		httpPaths = append(httpPaths, networkingv1.HTTPIngressPath{
			Path:     p,
			PathType: &pathType,
			Backend: networkingv1.IngressBackend{
				Service: &networkingv1.IngressServiceBackend{
					Name: meta.name,
					Port: networkingv1.ServiceBackendPort{Name: "http"},
				},
			},
		})
	}

	name := fmt.Sprintf("%s-%s", meta.name, zone.Name)
	objMeta := meta.objectMeta(name, map[string]string{ingressZoneLabel: zone.Name})

	spec := networkingv1.IngressSpec{
		IngressClassName: zone.Spec.IngressClass,
		Rules: []networkingv1.IngressRule{{
			Host: host,
			IngressRuleValue: networkingv1.IngressRuleValue{
				HTTP: &networkingv1.HTTPIngressRuleValue{Paths: httpPaths},
			},
		}},
	}

	if zone.Spec.TLS != nil {
		issuer := ""
		if zone.Spec.TLS.ClusterIssuer != nil {
			issuer = *zone.Spec.TLS.ClusterIssuer
		}
		objMeta.Annotations = map[string]string{"cert-manager.io/cluster-issuer": issuer}
		spec.TLS = []networkingv1.IngressTLS{{
			Hosts:      []string{host},
			SecretName: fmt.Sprintf("cert-ingress-%s", tlsSecretID(host)),
		}}
	}

	ingress := &networkingv1.Ingress{
		TypeMeta:   typeMeta("networking.k8s.io/v1", "Ingress"),
		ObjectMeta: objMeta,
		Spec:       spec,
	}

	return toCreateOrUpdate(ingress)
}

func staleIngress(meta commonMeta, zoneName string) (Operation, error) {
	stub := &networkingv1.Ingress{
		TypeMeta:   typeMeta("networking.k8s.io/v1", "Ingress"),
		ObjectMeta: stubMeta(fmt.Sprintf("%s-%s", meta.name, zoneName), meta.namespace),
	}
	return toDeleteIfExists(stub)
}
