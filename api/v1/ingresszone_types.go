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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// IngressZoneSpec defines a cluster-wide ingress template. Applications
// reference an IngressZone by name to publish an HTTP port through it.
type IngressZoneSpec struct {
	// Host is a template string. The literal substring "{appname}" is
	// replaced with the referencing Application's name.
	Host string `json:"host"`

	// IngressClass selects the IngressClass to use. If unset, the cluster
	// default IngressClass applies.
	// +optional
	IngressClass *string `json:"ingressClass,omitempty"`

	// TLS configures certificate issuance for Ingresses generated from
	// this zone. Its presence toggles TLS generation.
	// +optional
	TLS *IngressZoneTLS `json:"tls,omitempty"`
}

// IngressZoneTLS configures certificate issuance via cert-manager.
type IngressZoneTLS struct {
	// ClusterIssuer names the cert-manager ClusterIssuer to annotate
	// generated Ingresses with.
	// +optional
	ClusterIssuer *string `json:"clusterIssuer,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:scope=Cluster,shortName=zone
// +kubebuilder:printcolumn:name="Host",type="string",JSONPath=".spec.host"
// +kubebuilder:printcolumn:name="Age",type="date",JSONPath=".metadata.creationTimestamp"

// IngressZone is the Schema for the ingresszones API. It is cluster-scoped:
// a single zone is instantiated into one Ingress per referencing Application.
type IngressZone struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec IngressZoneSpec `json:"spec,omitempty"`
}

// +kubebuilder:object:root=true

// IngressZoneList contains a list of IngressZone.
type IngressZoneList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []IngressZone `json:"items"`
}

func init() {
	SchemeBuilder.Register(&IngressZone{}, &IngressZoneList{})
}
