package generate

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/types"
)

// OperationKind tags what an Operation should do when applied.
type OperationKind string

const (
	// CreateOrUpdate converges the cluster object toward the desired object.
	CreateOrUpdate OperationKind = "CreateOrUpdate"
	// DeleteIfExists removes the named object if it is present.
	DeleteIfExists OperationKind = "DeleteIfExists"
)

// Operation is a single declarative step produced by the generators: either
// upsert or delete-if-exists of a dynamic object. Object always carries
// enough type metadata (GVK) and ObjectMeta (name/namespace) for the apply
// engine to act on it without any further type-specific knowledge.
type Operation struct {
	Kind   OperationKind
	Object *unstructured.Unstructured
}

// managedLabels is the mandatory label set every managed object carries
// (spec invariant 1).
func managedLabels(appName string) map[string]string {
	return map[string]string{
		"app.kubernetes.io/name":       appName,
		"app.kubernetes.io/managed-by": "yakup",
	}
}

// ownerReference builds the controller owner reference every managed
// object carries (spec invariant 2).
func ownerReference(appName string, appUID types.UID) metav1.OwnerReference {
	return metav1.OwnerReference{
		APIVersion:         "yakup.ibidem.no/v1",
		Kind:               "Application",
		Name:               appName,
		UID:                appUID,
		Controller:         boolPtr(true),
		BlockOwnerDeletion: boolPtr(true),
	}
}

func boolPtr(b bool) *bool { return &b }

// toCreateOrUpdate converts a typed Kubernetes object into a CreateOrUpdate
// Operation, carrying it as a dynamic (unstructured) object the way the
// apply engine expects.
func toCreateOrUpdate(obj runtime.Object) (Operation, error) {
	u, err := toUnstructured(obj)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: CreateOrUpdate, Object: u}, nil
}

// toDeleteIfExists builds a DeleteIfExists Operation for a minimal stub
// object carrying only the GVK and name/namespace needed to delete it.
func toDeleteIfExists(obj runtime.Object) (Operation, error) {
	u, err := toUnstructured(obj)
	if err != nil {
		return Operation{}, err
	}
	return Operation{Kind: DeleteIfExists, Object: u}, nil
}

func toUnstructured(obj runtime.Object) (*unstructured.Unstructured, error) {
	m, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		return nil, processingErrorf("to-dynamic-object", "converting %T: %w", obj, err)
	}
	return &unstructured.Unstructured{Object: m}, nil
}
