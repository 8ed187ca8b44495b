package generate

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
	"k8s.io/utils/ptr"

	yakupv1 "github.com/ibidem-no/yakup/api/v1"
)

const (
	configMapMountRoot = "/var/run/config/yakup.ibidem.no"
	secretMountRoot     = "/var/run/secrets/yakup.ibidem.no"

	probePeriodSeconds        = 10
	probeTimeoutSeconds       = 1
	probeSuccessThreshold     = 1
	probeFailureThreshold     = 3
	defaultInitialDelaySecond = 15
)

// generateDeployment builds the Deployment Operation for app (spec section
// 4.2.1). It is the only generator that can fail on malformed input
// (ambiguous envFrom/filesFrom entries).
func generateDeployment(app *yakupv1.Application, meta commonMeta) (Operation, error) {
	env, err := translateEnv(app.Spec.Env)
	if err != nil {
		return Operation{}, err
	}

	envFrom, err := buildEnvFrom(app)
	if err != nil {
		return Operation{}, err
	}

	volumes, mounts, err := buildVolumes(app)
	if err != nil {
		return Operation{}, err
	}

	container := corev1.Container{
		Name:         app.Name,
		Image:        app.Spec.Image,
		Ports:        containerPorts(app.Spec.Ports),
		Env:          env,
		EnvFrom:      envFrom,
		VolumeMounts: mounts,
		Resources:    passthroughResources(app.Spec.Resources),
	}

	if app.Spec.Probes != nil {
		container.ReadinessProbe = buildProbe(app.Spec.Probes.Readiness)
		container.LivenessProbe = buildProbe(app.Spec.Probes.Liveness)
		container.StartupProbe = buildProbe(app.Spec.Probes.Startup)
	}

	deployment := &appsv1.Deployment{
		TypeMeta:   typeMeta("apps/v1", "Deployment"),
		ObjectMeta: meta.objectMeta(meta.name, nil),
		Spec: appsv1.DeploymentSpec{
			Replicas: ptr.To(int32(1)),
			Selector: &metav1.LabelSelector{MatchLabels: meta.labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: meta.labels},
				Spec: corev1.PodSpec{
					ServiceAccountName: meta.name,
					Containers:         []corev1.Container{container},
					Volumes:            volumes,
				},
			},
		},
	}

	return toCreateOrUpdate(deployment)
}

func passthroughResources(r *corev1.ResourceRequirements) corev1.ResourceRequirements {
	if r == nil {
		return corev1.ResourceRequirements{}
	}
	return *r
}

func containerPorts(ports *yakupv1.Ports) []corev1.ContainerPort {
	if ports == nil {
		return nil
	}
	var out []corev1.ContainerPort
	if ports.HTTP != nil {
		out = append(out, corev1.ContainerPort{Name: "http", ContainerPort: ports.HTTP.Port})
	}
	if ports.TCP != nil {
		out = append(out, corev1.ContainerPort{Name: "tcp", ContainerPort: ports.TCP.Port})
	}
	return out
}

func translateEnv(values []yakupv1.EnvValue) ([]corev1.EnvVar, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]corev1.EnvVar, 0, len(values))
	for _, v := range values {
		out = append(out, corev1.EnvVar{Name: v.Name, Value: v.Value})
	}
	return out, nil
}

// buildEnvFrom concatenates, in order: the two auto-injected sources
// (<app>-db, <app>), each as a ConfigMap source then a Secret source, both
// optional=true; followed by the user-supplied envFrom entries translated
// in their declared order.
func buildEnvFrom(app *yakupv1.Application) ([]corev1.EnvFromSource, error) {
	out := make([]corev1.EnvFromSource, 0, 4+len(app.Spec.EnvFrom))
	for _, name := range []string{app.Name + "-db", app.Name} {
		out = append(out, optionalConfigMapEnvFrom(name), optionalSecretEnvFrom(name))
	}
	for i, item := range app.Spec.EnvFrom {
		src, err := translateEnvFrom(item)
		if err != nil {
			return nil, processingErrorf("deployment.envFrom", "envFrom[%d] on application %q: %w", i, app.Name, err)
		}
		out = append(out, src)
	}
	return out, nil
}

func optionalConfigMapEnvFrom(name string) corev1.EnvFromSource {
	return corev1.EnvFromSource{
		ConfigMapRef: &corev1.ConfigMapEnvSource{
			LocalObjectReference: corev1.LocalObjectReference{Name: name},
			Optional:             ptr.To(true),
		},
	}
}

func optionalSecretEnvFrom(name string) corev1.EnvFromSource {
	return corev1.EnvFromSource{
		SecretRef: &corev1.SecretEnvSource{
			LocalObjectReference: corev1.LocalObjectReference{Name: name},
			Optional:             ptr.To(true),
		},
	}
}

func translateEnvFrom(item yakupv1.EnvFromSource) (corev1.EnvFromSource, error) {
	switch {
	case item.ConfigMap != nil && item.Secret == nil:
		return optionalConfigMapEnvFrom(*item.ConfigMap), nil
	case item.Secret != nil && item.ConfigMap == nil:
		return optionalSecretEnvFrom(*item.Secret), nil
	default:
		return corev1.EnvFromSource{}, fmt.Errorf("exactly one of configMap/secret must be set")
	}
}

// buildVolumes builds the volumes/volumeMounts pair: the two auto-injected
// <app>-db/<app> configmap+secret volumes, then one mount per filesFrom
// entry in declared order.
func buildVolumes(app *yakupv1.Application) ([]corev1.Volume, []corev1.VolumeMount, error) {
	var volumes []corev1.Volume
	var mounts []corev1.VolumeMount

	for _, name := range []string{app.Name + "-db", app.Name} {
		cmVol, cmMount := configMapVolume(name, defaultConfigMapPath(name))
		secVol, secMount := secretVolume(name, defaultSecretPath(name))
		volumes = append(volumes, cmVol, secVol)
		mounts = append(mounts, cmMount, secMount)
	}

	emptyDirIndex := 0
	for i, item := range app.Spec.FilesFrom {
		vol, mount, isEmptyDir, err := translateFilesFrom(item, emptyDirIndex)
		if err != nil {
			return nil, nil, processingErrorf("deployment.filesFrom", "filesFrom[%d] on application %q: %w", i, app.Name, err)
		}
		if isEmptyDir {
			emptyDirIndex++
		}
		volumes = append(volumes, vol)
		mounts = append(mounts, mount)
	}

	return volumes, mounts, nil
}

func defaultConfigMapPath(name string) string {
	return fmt.Sprintf("%s/%s", configMapMountRoot, name)
}

func defaultSecretPath(name string) string {
	return fmt.Sprintf("%s/%s", secretMountRoot, name)
}

func configMapVolume(name, mountPath string) (corev1.Volume, corev1.VolumeMount) {
	volName := name + "-configmap"
	vol := corev1.Volume{
		Name: volName,
		VolumeSource: corev1.VolumeSource{
			ConfigMap: &corev1.ConfigMapVolumeSource{
				LocalObjectReference: corev1.LocalObjectReference{Name: name},
				Optional:             ptr.To(true),
				DefaultMode:          ptr.To(int32(0o644)),
			},
		},
	}
	mount := corev1.VolumeMount{Name: volName, MountPath: mountPath, ReadOnly: true}
	return vol, mount
}

func secretVolume(name, mountPath string) (corev1.Volume, corev1.VolumeMount) {
	volName := name + "-secret"
	vol := corev1.Volume{
		Name: volName,
		VolumeSource: corev1.VolumeSource{
			Secret: &corev1.SecretVolumeSource{
				SecretName:  name,
				Optional:    ptr.To(true),
				DefaultMode: ptr.To(int32(0o644)),
			},
		},
	}
	mount := corev1.VolumeMount{Name: volName, MountPath: mountPath, ReadOnly: true}
	return vol, mount
}

func translateFilesFrom(item yakupv1.FilesFromSource, emptyDirIndex int) (corev1.Volume, corev1.VolumeMount, bool, error) {
	set := 0
	if item.ConfigMap != nil {
		set++
	}
	if item.Secret != nil {
		set++
	}
	if item.EmptyDir != nil {
		set++
	}
	if set != 1 {
		return corev1.Volume{}, corev1.VolumeMount{}, false, fmt.Errorf("exactly one of configMap/secret/emptyDir must be set")
	}

	switch {
	case item.ConfigMap != nil:
		path := defaultConfigMapPath(item.ConfigMap.Name)
		if item.ConfigMap.MountPath != nil {
			path = *item.ConfigMap.MountPath
		}
		vol, mount := configMapVolume(item.ConfigMap.Name, path)
		return vol, mount, false, nil
	case item.Secret != nil:
		path := defaultSecretPath(item.Secret.Name)
		if item.Secret.MountPath != nil {
			path = *item.Secret.MountPath
		}
		vol, mount := secretVolume(item.Secret.Name, path)
		return vol, mount, false, nil
	default:
		name := fmt.Sprintf("emptydir-%d", emptyDirIndex)
		vol := corev1.Volume{
			Name:         name,
			VolumeSource: corev1.VolumeSource{EmptyDir: &corev1.EmptyDirVolumeSource{}},
		}
		mount := corev1.VolumeMount{Name: name, MountPath: item.EmptyDir.MountPath}
		return vol, mount, true, nil
	}
}

// buildProbe translates a Probe into a corev1.Probe with the fixed timing
// parameters spec section 4.2.1 mandates. Returns nil if p is nil. The
// referenced port name is not validated against the declared ports.
func buildProbe(p *yakupv1.Probe) *corev1.Probe {
	if p == nil {
		return nil
	}

	initialDelay := int32(defaultInitialDelaySecond)
	if p.InitialDelaySeconds != nil {
		initialDelay = *p.InitialDelaySeconds
	}

	probe := &corev1.Probe{
		InitialDelaySeconds: initialDelay,
		PeriodSeconds:        probePeriodSeconds,
		TimeoutSeconds:       probeTimeoutSeconds,
		SuccessThreshold:     probeSuccessThreshold,
		FailureThreshold:     probeFailureThreshold,
	}

	switch {
	case p.HTTP != nil:
		path := "/"
		if p.HTTP.Path != nil {
			path = *p.HTTP.Path
		}
		probe.HTTPGet = &corev1.HTTPGetAction{
			Path: path,
			Port: intstr.FromString(p.PortName),
		}
	case p.TCP != nil:
		probe.TCPSocket = &corev1.TCPSocketAction{
			Port: intstr.FromString(p.PortName),
		}
	}

	return probe
}
