package apply

import (
	"context"
	"errors"
	"testing"

	appsv1 "k8s.io/api/apps/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	"k8s.io/client-go/dynamic/fake"
	"k8s.io/client-go/kubernetes/scheme"
	clienttesting "k8s.io/client-go/testing"
)

func deploymentGVK() schema.GroupVersionKind {
	return schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "Deployment"}
}

func deploymentGVR() schema.GroupVersionResource {
	return schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"}
}

// namespacedMapper returns a REST mapper that resolves Deployment to a
// namespace-scoped resource, enough for the engine's GVK-resolution step
// without a live discovery endpoint.
func namespacedMapper() meta.RESTMapper {
	mapper := meta.NewDefaultRESTMapper(nil)
	mapper.AddSpecific(deploymentGVK(), deploymentGVR(), deploymentGVR().GroupVersion().WithResource("deployment"), meta.RESTScopeNamespace)
	return mapper
}

func newDeployment(name, namespace, resourceVersion string) *unstructured.Unstructured {
	obj := &appsv1.Deployment{
		TypeMeta:   metav1.TypeMeta{APIVersion: "apps/v1", Kind: "Deployment"},
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace, ResourceVersion: resourceVersion},
	}
	m, err := runtime.DefaultUnstructuredConverter.ToUnstructured(obj)
	if err != nil {
		panic(err)
	}
	return &unstructured.Unstructured{Object: m}
}

func TestEngine_CreateOrUpdate_CreatesWhenMissing(t *testing.T) {
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	desired := newDeployment("demo", "default", "")
	if err := engine.CreateOrUpdate(context.Background(), desired); err != nil {
		t.Fatalf("CreateOrUpdate: %v", err)
	}

	got, err := dynClient.Resource(deploymentGVR()).Namespace("default").Get(context.Background(), "demo", metav1.GetOptions{})
	if err != nil {
		t.Fatalf("expected object to have been created: %v", err)
	}
	if got.GetName() != "demo" {
		t.Errorf("got name %q, want demo", got.GetName())
	}
}

func TestEngine_CreateOrUpdate_ReplacesWithServerResourceVersion(t *testing.T) {
	existing := newDeployment("demo", "default", "42")
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme, existing)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	var sawResourceVersion string
	dynClient.PrependReactor("update", "deployments", func(action clienttesting.Action) (bool, runtime.Object, error) {
		upd := action.(clienttesting.UpdateAction).GetObject().(*unstructured.Unstructured)
		sawResourceVersion = upd.GetResourceVersion()
		return false, nil, nil
	})

	desired := newDeployment("demo", "default", "")
	if err := engine.CreateOrUpdate(context.Background(), desired); err != nil {
		t.Fatalf("CreateOrUpdate: %v", err)
	}
	if sawResourceVersion != "42" {
		t.Errorf("PUT carried resourceVersion %q, want 42", sawResourceVersion)
	}
}

func TestEngine_CreateOrUpdate_ConflictSurfacesAsApplyError(t *testing.T) {
	existing := newDeployment("demo", "default", "1")
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme, existing)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	dynClient.PrependReactor("update", "deployments", func(clienttesting.Action) (bool, runtime.Object, error) {
		return true, nil, apierrors.NewConflict(deploymentGVR().GroupResource(), "demo", errors.New("stale resourceVersion"))
	})

	err := engine.CreateOrUpdate(context.Background(), newDeployment("demo", "default", ""))
	var applyErr *ApplyError
	if !errors.As(err, &applyErr) {
		t.Fatalf("expected *ApplyError, got %v", err)
	}
}

func TestEngine_DeleteIfExists_NotFoundIsSuccess(t *testing.T) {
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	if err := engine.DeleteIfExists(context.Background(), newDeployment("absent", "default", "")); err != nil {
		t.Fatalf("DeleteIfExists on a missing object should succeed, got %v", err)
	}
}

func TestEngine_DeleteIfExists_DeletesExisting(t *testing.T) {
	existing := newDeployment("demo", "default", "1")
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme, existing)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	if err := engine.DeleteIfExists(context.Background(), existing); err != nil {
		t.Fatalf("DeleteIfExists: %v", err)
	}

	_, err := dynClient.Resource(deploymentGVR()).Namespace("default").Get(context.Background(), "demo", metav1.GetOptions{})
	if !apierrors.IsNotFound(err) {
		t.Errorf("expected object to be gone, got err=%v", err)
	}
}

func TestEngine_MissingGVK(t *testing.T) {
	dynClient := fake.NewSimpleDynamicClient(scheme.Scheme)
	engine := NewEngineWithClients(dynClient, namespacedMapper())

	obj := &unstructured.Unstructured{Object: map[string]any{
		"metadata": map[string]any{"name": "demo"},
	}}

	err := engine.CreateOrUpdate(context.Background(), obj)
	var gvkErr *GVKLookupError
	if !errors.As(err, &gvkErr) {
		t.Fatalf("expected *GVKLookupError, got %v", err)
	}
}
