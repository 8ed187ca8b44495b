package controller

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

var _ = Describe("Application Controller", func() {
	It("creates a Deployment and ServiceAccount, and skips the Service, for a portless app", func() {
		app := &yakupv1.Application{
			ObjectMeta: metav1.ObjectMeta{Name: "demo-minimal", Namespace: "default"},
			Spec:       yakupv1.ApplicationSpec{Image: "nginx:1.27"},
		}
		Expect(k8sClient.Create(ctx, app)).To(Succeed())

		var dep appsv1.Deployment
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Name: "demo-minimal", Namespace: "default"}, &dep)
		}).Should(Succeed())
		Expect(dep.Spec.Template.Spec.Containers).To(HaveLen(1))
		Expect(dep.Spec.Template.Spec.Containers[0].Image).To(Equal("nginx:1.27"))
		Expect(dep.OwnerReferences).To(HaveLen(1))
		Expect(dep.OwnerReferences[0].Name).To(Equal("demo-minimal"))

		var sa corev1.ServiceAccount
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Name: "demo-minimal", Namespace: "default"}, &sa)
		}).Should(Succeed())

		Consistently(func() bool {
			var svc corev1.Service
			err := k8sClient.Get(ctx, types.NamespacedName{Name: "demo-minimal", Namespace: "default"}, &svc)
			return apierrors.IsNotFound(err)
		}).Should(BeTrue())
	})

	It("creates a Service once the application declares a port", func() {
		app := &yakupv1.Application{
			ObjectMeta: metav1.ObjectMeta{Name: "demo-port", Namespace: "default"},
			Spec: yakupv1.ApplicationSpec{
				Image: "nginx:1.27",
				Ports: &yakupv1.Ports{HTTP: &yakupv1.HTTPPort{Port: 8080}},
			},
		}
		Expect(k8sClient.Create(ctx, app)).To(Succeed())

		var svc corev1.Service
		Eventually(func() error {
			return k8sClient.Get(ctx, types.NamespacedName{Name: "demo-port", Namespace: "default"}, &svc)
		}).Should(Succeed())
		Expect(svc.Spec.Ports).To(HaveLen(1))
		Expect(svc.Spec.Ports[0].Name).To(Equal("http"))
	})
})
