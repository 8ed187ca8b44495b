package generate

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/intstr"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

// generateService builds the Service Operation for app (spec section
// 4.2.2). An Application with no declared ports has no Service; any
// previously created one is torn down.
func generateService(app *yakupv1.Application, meta commonMeta) (Operation, error) {
	if !hasAnyPort(app.Spec.Ports) {
		stub := &corev1.Service{
			TypeMeta:   typeMeta("v1", "Service"),
			ObjectMeta: stubMeta(meta.name, meta.namespace),
		}
		return toDeleteIfExists(stub)
	}

	svc := &corev1.Service{
		TypeMeta:   typeMeta("v1", "Service"),
		ObjectMeta: meta.objectMeta(meta.name, nil),
		Spec: corev1.ServiceSpec{
			Selector: meta.labels,
			Ports:    servicePorts(app.Spec.Ports),
		},
	}
	return toCreateOrUpdate(svc)
}

func hasAnyPort(ports *yakupv1.Ports) bool {
	return ports != nil && (ports.HTTP != nil || ports.TCP != nil)
}

func servicePorts(ports *yakupv1.Ports) []corev1.ServicePort {
	var out []corev1.ServicePort
	if ports.HTTP != nil {
		out = append(out, corev1.ServicePort{
			Name:       "http",
			Port:       80,
			TargetPort: intstr.FromString("http"),
		})
	}
	if ports.TCP != nil {
		out = append(out, corev1.ServicePort{
			Name:       "tcp",
			Port:       ports.TCP.Port,
			TargetPort: intstr.FromString("tcp"),
		})
	}
	return out
}
