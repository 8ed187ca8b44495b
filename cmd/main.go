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

// Package main is the entrypoint of the yakup operator: it wires the
// manager, the two watch loops, the shared Zone Cache, the dynamic apply
// engine, and tracing, then blocks until the process is signalled to stop.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
	"github.com/ibidem-no/yakup/internal/apply"
	"github.com/ibidem-no/yakup/internal/config"
	"github.com/ibidem-no/yakup/internal/controller"
	"github.com/ibidem-no/yakup/internal/telemetry"
	"github.com/ibidem-no/yakup/internal/zonecache"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(yakupv1.AddToScheme(scheme))
}

func main() {
	opts := zap.Options{Development: false}
	opts.BindFlags(flag.CommandLine)
	flag.Parse()
	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts)))

	cfg, err := config.Load()
	if err != nil {
		setupLog.Error(err, "loading configuration")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName:  cfg.ServiceName,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		setupLog.Error(err, "setting up tracing")
		os.Exit(1)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			setupLog.Error(err, "shutting down tracer provider")
		}
	}()

	restConfig := ctrl.GetConfigOrDie()

	mgr, err := ctrl.NewManager(restConfig, ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsserver.Options{BindAddress: cfg.MetricsBindAddress},
		HealthProbeBindAddress: cfg.HealthProbeBindAddress,
		LeaderElection:         cfg.LeaderElection,
		LeaderElectionID:       cfg.LeaderElectionID,
	})
	if err != nil {
		setupLog.Error(err, "creating manager")
		os.Exit(1)
	}

	applyEngine, err := apply.NewEngine(restConfig)
	if err != nil {
		setupLog.Error(err, "creating apply engine")
		os.Exit(1)
	}

	zones := zonecache.New()

	if err := (&controller.IngressZoneReconciler{
		Client:            mgr.GetClient(),
		Scheme:            mgr.GetScheme(),
		Zones:             zones,
		ReconcileInterval: cfg.ReconcileInterval,
		ErrorBackoff:      cfg.ErrorBackoff,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "creating controller", "controller", "IngressZone")
		os.Exit(1)
	}

	if err := (&controller.ApplicationReconciler{
		Client:            mgr.GetClient(),
		Scheme:            mgr.GetScheme(),
		Zones:             zones,
		Apply:             applyEngine,
		ReconcileInterval: cfg.ReconcileInterval,
		ErrorBackoff:      cfg.ErrorBackoff,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "creating controller", "controller", "Application")
		os.Exit(1)
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "setting up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "setting up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting manager")
	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
