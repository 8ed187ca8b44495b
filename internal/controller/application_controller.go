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

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
	"github.com/ibidem-no/yakup/internal/apply"
	"github.com/ibidem-no/yakup/internal/generate"
	"github.com/ibidem-no/yakup/internal/telemetry"
	"github.com/ibidem-no/yakup/internal/zonecache"
)

// ApplicationReconciler reconciles an Application object (spec sections 4.5,
// 4.3). It owns no state of its own beyond a read handle onto the shared
// Zone Cache: every Deployment/Service/ServiceAccount/Ingress it manages is
// derived fresh on each reconcile by generate.Generate and converged with
// apply.Engine.
type ApplicationReconciler struct {
	client.Client
	Scheme *runtime.Scheme

	// Zones is the shared cache populated by IngressZoneReconciler.
	Zones *zonecache.Cache
	// Apply converges the generated operations against the cluster.
	Apply *apply.Engine

	// ReconcileInterval is the periodic full re-reconcile period on success.
	ReconcileInterval time.Duration
	// ErrorBackoff is the requeue delay after a failed reconcile.
	ErrorBackoff time.Duration
}

// +kubebuilder:rbac:groups=yakup.ibidem.no,resources=applications,verbs=get;list;watch
// +kubebuilder:rbac:groups=yakup.ibidem.no,resources=applications/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=apps,resources=deployments,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=core,resources=services;serviceaccounts,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=networking.k8s.io,resources=ingresses,verbs=get;list;watch;create;update;patch;delete

// Reconcile drives a single Application toward the set of cluster objects
// generate.Generate derives from it and the current Zone Cache snapshot
// (spec section 4.5): snapshot, generate, apply in order, short-circuiting
// on the first apply failure.
func (r *ApplicationReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)

	app := &yakupv1.Application{}
	if err := r.Get(ctx, req.NamespacedName, app); err != nil {
		return ctrl.Result{}, client.IgnoreNotFound(err)
	}

	zones := r.Zones.Snapshot()

	ops, err := generate.Generate(app, zones, func(zoneName string) {
		log.Info("ingress references unknown zone, skipping", "application", app.Name, "zone", zoneName)
	})
	if err != nil {
		log.Error(err, "generating operations", "application", app.Name, "traceId", telemetry.TraceIDFromContext(ctx))
		return ctrl.Result{RequeueAfter: r.ErrorBackoff}, nil
	}

	if err := apply.Run(ctx, r.Apply, ops); err != nil {
		log.Error(err, "applying operations", "application", app.Name, "traceId", telemetry.TraceIDFromContext(ctx))
		return ctrl.Result{RequeueAfter: r.ErrorBackoff}, nil
	}

	log.Info("reconciliation complete", "application", app.Name, "operations", len(ops))
	return ctrl.Result{RequeueAfter: r.ReconcileInterval}, nil
}

// SetupWithManager registers this controller with mgr, owning the concrete
// resource kinds it generates so their events re-trigger their owning
// Application (spec invariant 2: every managed object is owned by its
// Application).
func (r *ApplicationReconciler) SetupWithManager(mgr ctrl.Manager) error {
	return ctrl.NewControllerManagedBy(mgr).
		For(&yakupv1.Application{}).
		Owns(&appsv1.Deployment{}).
		Owns(&corev1.Service{}).
		Owns(&corev1.ServiceAccount{}).
		Owns(&networkingv1.Ingress{}).
		Named("application").
		Complete(r)
}
