package generate

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

// generateServiceAccount always emits a CreateOrUpdate ServiceAccount (spec
// section 4.2.3); unlike the Service and Ingress generators it is never
// torn down, since a Deployment always references it.
func generateServiceAccount(app *yakupv1.Application, meta commonMeta) (Operation, error) {
	sa := &corev1.ServiceAccount{
		TypeMeta:                     typeMeta("v1", "ServiceAccount"),
		ObjectMeta:                   meta.objectMeta(meta.name, nil),
		AutomountServiceAccountToken: ptr.To(true),
	}
	return toCreateOrUpdate(sa)
}
