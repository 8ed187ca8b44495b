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

package v1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ApplicationSpec defines the desired state of an Application.
// Every field represents user intent; the operator never mutates this spec.
type ApplicationSpec struct {
	// Image is the container image to run, including tag.
	// +kubebuilder:validation:Required
	Image string `json:"image"`

	// Env is the ordered list of environment variables to set in the container.
	// Duplicates are allowed; order is preserved into the generated Deployment.
	// +optional
	Env []EnvValue `json:"env,omitempty"`

	// EnvFrom injects environment variables from ConfigMaps or Secrets.
	// Each entry must set exactly one of configMap/secret.
	// +optional
	EnvFrom []EnvFromSource `json:"envFrom,omitempty"`

	// FilesFrom mounts files from ConfigMaps, Secrets, or emptyDir volumes.
	// Each entry must set exactly one of configMap/secret/emptyDir.
	// +optional
	FilesFrom []FilesFromSource `json:"filesFrom,omitempty"`

	// Ports declares the ports the application listens on, and optionally
	// which ingress zones should route to the http port.
	// +optional
	Ports *Ports `json:"ports,omitempty"`

	// Probes configures readiness, liveness and startup probes.
	// +optional
	Probes *Probes `json:"probes,omitempty"`

	// Resources is passed through verbatim to the generated container.
	// +optional
	Resources *corev1.ResourceRequirements `json:"resources,omitempty"`

	// Autoscaling, metrics and Kafka-consumer-lag scaling signals are
	// reserved in the source data model but not implemented by this core.
	//
	// Autoscaling *AutoscalingSpec `json:"autoscaling,omitempty"`
	// Metrics     *MetricsSpec     `json:"metrics,omitempty"`
}

// EnvValue is a single environment variable name/value pair.
type EnvValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EnvFromSource injects environment variables from a ConfigMap or a Secret.
// Exactly one of ConfigMap or Secret must be set; a generator-time error is
// raised if both or neither are set.
type EnvFromSource struct {
	// ConfigMap names a ConfigMap to source environment variables from.
	// +optional
	ConfigMap *string `json:"configMap,omitempty"`

	// Secret names a Secret to source environment variables from.
	// +optional
	Secret *string `json:"secret,omitempty"`
}

// FilesFromSource mounts files into the container from one of three sources.
// Exactly one of ConfigMap, Secret, or EmptyDir must be set.
type FilesFromSource struct {
	// +optional
	ConfigMap *FilesFromConfigMap `json:"configMap,omitempty"`
	// +optional
	Secret *FilesFromSecret `json:"secret,omitempty"`
	// +optional
	EmptyDir *FilesFromEmptyDir `json:"emptyDir,omitempty"`
}

// FilesFromConfigMap mounts a ConfigMap as a read-only volume.
type FilesFromConfigMap struct {
	// Name of the ConfigMap to mount.
	Name string `json:"name"`

	// MountPath defaults to /var/run/config/yakup.ibidem.no/<name>.
	// +optional
	MountPath *string `json:"mountPath,omitempty"`
}

// FilesFromSecret mounts a Secret as a read-only volume.
type FilesFromSecret struct {
	// Name of the Secret to mount.
	Name string `json:"name"`

	// MountPath defaults to /var/run/secrets/yakup.ibidem.no/<name>.
	// +optional
	MountPath *string `json:"mountPath,omitempty"`
}

// FilesFromEmptyDir mounts an emptyDir volume. MountPath is required since
// there is no natural default for a scratch volume.
type FilesFromEmptyDir struct {
	MountPath string `json:"mountPath"`
}

// Ports declares at most one HTTP and one TCP container port.
type Ports struct {
	// +optional
	HTTP *HTTPPort `json:"http,omitempty"`
	// +optional
	TCP *TCPPort `json:"tcp,omitempty"`
}

// HTTPPort is the application's HTTP listening port, optionally exposed
// through one or more IngressZones.
type HTTPPort struct {
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port int32 `json:"port"`

	// Ingress lists the zones this port should be published through.
	// +optional
	Ingress []IngressRef `json:"ingress,omitempty"`
}

// TCPPort is the application's TCP listening port.
type TCPPort struct {
	// +kubebuilder:validation:Minimum=1
	// +kubebuilder:validation:Maximum=65535
	Port int32 `json:"port"`
}

// PathType selects how an Ingress path is matched.
// +kubebuilder:validation:Enum=Prefix;Exact
type PathType string

const (
	// PathTypePrefix matches by path segment prefix. This is the default.
	PathTypePrefix PathType = "Prefix"
	// PathTypeExact matches the path exactly.
	PathTypeExact PathType = "Exact"
)

// IngressRef references an IngressZone an HTTP port should be published through.
type IngressRef struct {
	// Zone must match the name of an IngressZone.
	Zone string `json:"zone"`

	// PathType defaults to Prefix.
	// +optional
	PathType *PathType `json:"pathType,omitempty"`

	// Paths defaults to ["/"].
	// +optional
	Paths []string `json:"paths,omitempty"`
}

// Probes configures the three standard Kubernetes pod probes.
type Probes struct {
	// +optional
	Readiness *Probe `json:"readiness,omitempty"`
	// +optional
	Liveness *Probe `json:"liveness,omitempty"`
	// +optional
	Startup *Probe `json:"startup,omitempty"`
}

// Probe has exactly one of HTTP or TCP set, plus the named container port to
// probe and an optional initial delay.
type Probe struct {
	// +optional
	HTTP *HTTPAction `json:"http,omitempty"`
	// +optional
	TCP *TCPAction `json:"tcp,omitempty"`

	// PortName must reference a port declared elsewhere in the spec. This is
	// not validated: a probe naming a port that does not exist is passed
	// through to the generated Deployment as-is.
	PortName string `json:"portName"`

	// InitialDelaySeconds defaults to 15 if unset.
	// +optional
	InitialDelaySeconds *int32 `json:"initialDelaySeconds,omitempty"`
}

// HTTPAction is an HTTP GET probe action. Path defaults to "/".
type HTTPAction struct {
	// +optional
	Path *string `json:"path,omitempty"`
}

// TCPAction is a bare TCP socket probe action.
type TCPAction struct{}

// ApplicationStatus defines the observed state of an Application.
// This core leaves conditions as a reserved slot; it does not write status.
type ApplicationStatus struct {
	// +optional
	// +listType=map
	// +listMapKey=type
	Conditions []metav1.Condition `json:"conditions,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:shortName=app
// +kubebuilder:printcolumn:name="Image",type="string",JSONPath=".spec.image"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// Application is the Schema for the applications API. It is a high-level
// descriptor reconciled into a Deployment, Service, ServiceAccount, and
// zero or more Ingress objects.
type Application struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   ApplicationSpec   `json:"spec,omitempty"`
	Status ApplicationStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// ApplicationList contains a list of Application.
type ApplicationList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Application `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Application{}, &ApplicationList{})
}
