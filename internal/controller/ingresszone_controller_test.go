package controller

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

var _ = Describe("IngressZone Controller", func() {
	It("caches the zone on create and removes it from the cache on delete", func() {
		zone := &yakupv1.IngressZone{
			ObjectMeta: metav1.ObjectMeta{Name: "zone-cache-test"},
			Spec: yakupv1.IngressZoneSpec{
				Host: "{appname}.example.com",
			},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())

		Eventually(func() bool {
			_, ok := testZones.Snapshot()["zone-cache-test"]
			return ok
		}).Should(BeTrue())

		Expect(k8sClient.Delete(ctx, zone)).To(Succeed())

		Eventually(func() bool {
			_, ok := testZones.Snapshot()["zone-cache-test"]
			return ok
		}).Should(BeFalse())
	})

	It("reflects an updated host on the next reconcile", func() {
		zone := &yakupv1.IngressZone{
			ObjectMeta: metav1.ObjectMeta{Name: "zone-update-test"},
			Spec:       yakupv1.IngressZoneSpec{Host: "old.example.com"},
		}
		Expect(k8sClient.Create(ctx, zone)).To(Succeed())

		Eventually(func() string {
			z, ok := testZones.Snapshot()["zone-update-test"]
			if !ok {
				return ""
			}
			return z.Spec.Host
		}).Should(Equal("old.example.com"))

		var fetched yakupv1.IngressZone
		Expect(k8sClient.Get(ctx, types.NamespacedName{Name: "zone-update-test"}, &fetched)).To(Succeed())
		fetched.Spec.Host = "new.example.com"
		Expect(k8sClient.Update(ctx, &fetched)).To(Succeed())

		Eventually(func() string {
			z, ok := testZones.Snapshot()["zone-update-test"]
			if !ok {
				return ""
			}
			return z.Spec.Host
		}).Should(Equal("new.example.com"))
	})
})
