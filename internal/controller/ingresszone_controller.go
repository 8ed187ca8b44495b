/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
	"github.com/ibidem-no/yakup/internal/telemetry"
	"github.com/ibidem-no/yakup/internal/zonecache"
)

// IngressZoneReconciler reconciles an IngressZone object (spec section 4.5).
// It has no child resources of its own: its entire job is keeping Zones in
// sync with the state the Application reconciler reads.
type IngressZoneReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	// Zones is the shared cache written here and read by ApplicationReconciler.
	Zones *zonecache.Cache

	// ReconcileInterval is the periodic full re-reconcile period on success.
	ReconcileInterval time.Duration
	// ErrorBackoff is the requeue delay after a failed reconcile.
	ErrorBackoff time.Duration
}

// +kubebuilder:rbac:groups=yakup.ibidem.no,resources=ingresszones,verbs=get;list;watch

// Reconcile upserts the IngressZone into the shared cache, or removes it
// from the cache if the object no longer exists (spec section 9: zone
// deletion must propagate, unlike the source this was distilled from).
func (r *IngressZoneReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	zone := &yakupv1.IngressZone{}
	if err := r.Get(ctx, req.NamespacedName, zone); err != nil {
		if client.IgnoreNotFound(err) == nil {
			r.Zones.Delete(req.Name)
			log.Info("ingresszone removed from cache", "name", req.Name)
			return ctrl.Result{}, nil
		}
		log.Error(err, "fetching ingresszone", "traceId", telemetry.TraceIDFromContext(ctx))
		return ctrl.Result{RequeueAfter: r.ErrorBackoff}, nil
	}

	r.Zones.Upsert(zone)
	log.Info("ingresszone cached", "name", zone.Name, "host", zone.Spec.Host)

	return ctrl.Result{RequeueAfter: r.ReconcileInterval}, nil
}

// SetupWithManager registers this controller with mgr.
func (r *IngressZoneReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&yakupv1.IngressZone{}).
		Named("ingresszone").
		Complete(r)
}
