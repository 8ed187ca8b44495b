// Package generate implements the pure translation from an Application
// (plus the current set of IngressZones) into an ordered list of
// declarative Operations — Kubernetes Deployment, Service, ServiceAccount
// and Ingress objects with owner references and label conventions. The
// generators here perform no I/O and are deterministic: equal inputs
// produce byte-identical JSON payloads.
package generate

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

// commonMeta is the metadata shared by every managed object for a given
// Application: name, namespace, mandatory labels and the owner reference
// back to the Application.
type commonMeta struct {
	name      string
	namespace string
	labels    map[string]string
	owner     metav1.OwnerReference
}

// newCommonMeta builds the common ObjectMeta inputs for app, per spec
// section 4.3 step 2.
func newCommonMeta(app *yakupv1.Application) commonMeta {
	namespace := app.Namespace
	if namespace == "" {
		namespace = "default"
	}
	return commonMeta{
		name:      app.Name,
		namespace: namespace,
		labels:    managedLabels(app.Name),
		owner:     ownerReference(app.Name, app.UID),
	}
}

// objectMeta returns a metav1.ObjectMeta for a managed object named name,
// carrying the common labels and owner reference.
func (m commonMeta) objectMeta(name string, extraLabels map[string]string) metav1.ObjectMeta {
	labels := make(map[string]string, len(m.labels)+len(extraLabels))
	for k, v := range m.labels {
		labels[k] = v
	}
	for k, v := range extraLabels {
		labels[k] = v
	}
	return metav1.ObjectMeta{
		Name:            name,
		Namespace:       m.namespace,
		Labels:          labels,
		OwnerReferences: []metav1.OwnerReference{m.owner},
	}
}

// stubMeta returns a minimal ObjectMeta for a DeleteIfExists target: only
// identity is required, no labels or owner reference.
func stubMeta(name, namespace string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: name, Namespace: namespace}
}

// typeMeta constructs a metav1.TypeMeta for kind/apiVersion; generated
// typed objects set this explicitly because the apply engine resolves
// GVKs purely from the dynamic object's type metadata.
func typeMeta(apiVersion, kind string) metav1.TypeMeta {
	return metav1.TypeMeta{APIVersion: apiVersion, Kind: kind}
}
