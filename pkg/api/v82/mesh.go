package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"

	"github.com/Azure/azure-servicefabric-go/pkg/api"
)

// ApplicationResourceDescription describes a mesh application resource.
type ApplicationResourceDescription struct {
	Name       string                        `json:"name"`
	Properties ApplicationResourceProperties `json:"properties"`
}

// NewApplicationResourceDescription returns a description with its
// required fields set.
func NewApplicationResourceDescription(name string) *ApplicationResourceDescription {
	return &ApplicationResourceDescription{
		Name: name,
	}
}

// ApplicationResourceProperties describes properties of a mesh application
// resource.
type ApplicationResourceProperties struct {
	Description         *string                      `json:"description,omitempty"`
	Services            []ServiceResourceDescription `json:"services,omitempty"`
	DebugParams         *string                      `json:"debugParams,omitempty"`
	ServiceNames        []string                     `json:"serviceNames,omitempty"`
	Status              *ResourceStatus              `json:"status,omitempty"`
	StatusDetails       *string                      `json:"statusDetails,omitempty"`
	HealthState         *HealthState                 `json:"healthState,omitempty"`
	UnhealthyEvaluation *string                      `json:"unhealthyEvaluation,omitempty"`
}

// PagedApplicationResourceDescriptionList is the list of application
// resources.
type PagedApplicationResourceDescriptionList struct {
	ContinuationToken *string                          `json:"ContinuationToken,omitempty"`
	Items             []ApplicationResourceDescription `json:"Items,omitempty"`
}

// ServiceResourceDescription describes a mesh service resource.
type ServiceResourceDescription struct {
	Name       string                    `json:"name"`
	Properties ServiceResourceProperties `json:"properties"`
}

// NewServiceResourceDescription returns a description with its required
// fields set.
func NewServiceResourceDescription(name string, osType OperatingSystemType, codePackages ...ContainerCodePackageProperties) *ServiceResourceDescription {
	return &ServiceResourceDescription{
		Name: name,
		Properties: ServiceResourceProperties{
			OsType:       osType,
			CodePackages: codePackages,
		},
	}
}

// ServiceResourceProperties describes properties of a mesh service
// resource.
type ServiceResourceProperties struct {
	OsType              OperatingSystemType              `json:"osType"`
	CodePackages        []ContainerCodePackageProperties `json:"codePackages"`
	NetworkRefs         []NetworkRef                     `json:"networkRefs,omitempty"`
	Description         *string                          `json:"description,omitempty"`
	ReplicaCount        *int32                           `json:"replicaCount,omitempty"`
	Status              *ResourceStatus                  `json:"status,omitempty"`
	StatusDetails       *string                          `json:"statusDetails,omitempty"`
	HealthState         *HealthState                     `json:"healthState,omitempty"`
	UnhealthyEvaluation *string                          `json:"unhealthyEvaluation,omitempty"`
}

// PagedServiceResourceDescriptionList is the list of service resources.
type PagedServiceResourceDescriptionList struct {
	ContinuationToken *string                      `json:"ContinuationToken,omitempty"`
	Items             []ServiceResourceDescription `json:"Items,omitempty"`
}

// ImageRegistryCredential is the image registry credential.
type ImageRegistryCredential struct {
	Server       string                     `json:"server"`
	Username     string                     `json:"username"`
	PasswordType *ImageRegistryPasswordType `json:"passwordType,omitempty"`
	Password     *api.SecureString          `json:"password,omitempty"`
}

// NewImageRegistryCredential returns a credential with its required fields
// set.
func NewImageRegistryCredential(server, username string) *ImageRegistryCredential {
	return &ImageRegistryCredential{
		Server:   server,
		Username: username,
	}
}

// EnvironmentVariable describes an environment variable for the container.
type EnvironmentVariable struct {
	Type  *EnvironmentVariableType `json:"type,omitempty"`
	Name  *string                  `json:"name,omitempty"`
	Value *string                  `json:"value,omitempty"`
}

// Setting describes a setting for the container. The setting file path
// can be fetched from environment variable "Fabric_SettingPath".
type Setting struct {
	Type  *EnvironmentVariableType `json:"type,omitempty"`
	Name  *string                  `json:"name,omitempty"`
	Value *string                  `json:"value,omitempty"`
}

// ContainerLabel describes a container label.
type ContainerLabel struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// EndpointProperties describes a container endpoint.
type EndpointProperties struct {
	Name string `json:"name"`
	Port *int32 `json:"port,omitempty"`
}

// ResourceRequests describes the requested resources for a given
// container.
type ResourceRequests struct {
	MemoryInGB float64 `json:"memoryInGB"`
	CPU        float64 `json:"cpu"`
}

// ResourceLimits describes the resource limits for a given container.
type ResourceLimits struct {
	MemoryInGB *float64 `json:"memoryInGB,omitempty"`
	CPU        *float64 `json:"cpu,omitempty"`
}

// ResourceRequirements describes the requested resources and limits for a
// container. Limits default to the requests.
type ResourceRequirements struct {
	Requests ResourceRequests `json:"requests"`
	Limits   *ResourceLimits  `json:"limits,omitempty"`
}

// VolumeReference describes a reference to a volume resource.
type VolumeReference struct {
	Name            string `json:"name"`
	ReadOnly        *bool  `json:"readOnly,omitempty"`
	DestinationPath string `json:"destinationPath"`
}

// ContainerCodePackageProperties describes a container and its runtime
// properties.
type ContainerCodePackageProperties struct {
	Name                    string                   `json:"name"`
	Image                   string                   `json:"image"`
	ImageRegistryCredential *ImageRegistryCredential `json:"imageRegistryCredential,omitempty"`
	Entrypoint              *string                  `json:"entrypoint,omitempty"`
	Commands                []string                 `json:"commands,omitempty"`
	EnvironmentVariables    []EnvironmentVariable    `json:"environmentVariables,omitempty"`
	Settings                []Setting                `json:"settings,omitempty"`
	Labels                  []ContainerLabel         `json:"labels,omitempty"`
	Endpoints               []EndpointProperties     `json:"endpoints,omitempty"`
	Resources               ResourceRequirements     `json:"resources"`
	VolumeRefs              []VolumeReference        `json:"volumeRefs,omitempty"`
}

// NewContainerCodePackageProperties returns a code package with its
// required fields set.
func NewContainerCodePackageProperties(name, image string, cpu, memoryInGB float64) *ContainerCodePackageProperties {
	return &ContainerCodePackageProperties{
		Name:  name,
		Image: image,
		Resources: ResourceRequirements{
			Requests: ResourceRequests{
				MemoryInGB: memoryInGB,
				CPU:        cpu,
			},
		},
	}
}

// EndpointRef describes a reference to a service endpoint.
type EndpointRef struct {
	Name *string `json:"name,omitempty"`
}

// NetworkRef describes a network reference in a service.
type NetworkRef struct {
	Name         *string       `json:"name,omitempty"`
	EndpointRefs []EndpointRef `json:"endpointRefs,omitempty"`
}

// BasicSecretResourceProperties is implemented by every secret kind.
type BasicSecretResourceProperties interface {
	GetSecretResourceProperties() *SecretResourceProperties
}

// SecretResourceProperties describes the properties of a secret resource.
type SecretResourceProperties struct {
	Kind          SecretKind      `json:"kind"`
	Description   *string         `json:"description,omitempty"`
	Status        *ResourceStatus `json:"status,omitempty"`
	StatusDetails *string         `json:"statusDetails,omitempty"`
	ContentType   *string         `json:"contentType,omitempty"`
}

// GetSecretResourceProperties returns s.
func (s *SecretResourceProperties) GetSecretResourceProperties() *SecretResourceProperties {
	return s
}

// InlinedValueSecretResourceProperties describes the properties of a
// secret resource whose value is provided explicitly as plaintext.
type InlinedValueSecretResourceProperties struct {
	SecretResourceProperties
}

// MarshalJSON sets the kind discriminator.
func (i InlinedValueSecretResourceProperties) MarshalJSON() ([]byte, error) {
	type alias InlinedValueSecretResourceProperties
	i.Kind = SecretKindInlinedValue
	return json.Marshal(alias(i))
}

// KeyVaultVersionedReferenceSecretResourceProperties describes the
// properties of a secret resource whose value is a Key Vault secret URI.
type KeyVaultVersionedReferenceSecretResourceProperties struct {
	SecretResourceProperties
}

// MarshalJSON sets the kind discriminator.
func (k KeyVaultVersionedReferenceSecretResourceProperties) MarshalJSON() ([]byte, error) {
	type alias KeyVaultVersionedReferenceSecretResourceProperties
	k.Kind = SecretKindKeyVaultVersionedReference
	return json.Marshal(alias(k))
}

var secretResourcePropertiesFactories = map[string]func() BasicSecretResourceProperties{
	string(SecretKindInlinedValue): func() BasicSecretResourceProperties {
		return &InlinedValueSecretResourceProperties{}
	},
	string(SecretKindKeyVaultVersionedReference): func() BasicSecretResourceProperties {
		return &KeyVaultVersionedReferenceSecretResourceProperties{}
	},
}

// UnmarshalSecretResourceProperties decodes secret properties by their
// kind.
func UnmarshalSecretResourceProperties(b []byte) (BasicSecretResourceProperties, error) {
	return api.UnmarshalPolymorphic(b, "kind", secretResourcePropertiesFactories, func() BasicSecretResourceProperties {
		return &SecretResourceProperties{}
	})
}

// SecretResourceDescription describes a secret resource.
type SecretResourceDescription struct {
	Properties BasicSecretResourceProperties `json:"properties"`
	Name       string                        `json:"name"`
}

// NewSecretResourceDescription returns a description with its required
// fields set.
func NewSecretResourceDescription(name string, properties BasicSecretResourceProperties) *SecretResourceDescription {
	return &SecretResourceDescription{
		Properties: properties,
		Name:       name,
	}
}

// UnmarshalJSON decodes s including its properties.
func (s *SecretResourceDescription) UnmarshalJSON(b []byte) (err error) {
	var v struct {
		Properties json.RawMessage `json:"properties"`
		Name       string          `json:"name"`
	}
	if err = json.Unmarshal(b, &v); err != nil {
		return err
	}

	s.Name = v.Name
	s.Properties = nil
	if len(v.Properties) > 0 {
		s.Properties, err = UnmarshalSecretResourceProperties(v.Properties)
	}
	return err
}

// PagedSecretResourceDescriptionList is the list of secret resources.
type PagedSecretResourceDescriptionList struct {
	ContinuationToken *string                     `json:"ContinuationToken,omitempty"`
	Items             []SecretResourceDescription `json:"Items,omitempty"`
}

// SecretValueProperties describes properties of a secret value resource.
type SecretValueProperties struct {
	Value *api.SecureString `json:"value,omitempty"`
}

// SecretValueResourceDescription describes a value of a secret resource.
// The name is the version identifier.
type SecretValueResourceDescription struct {
	Name       string                `json:"name"`
	Properties SecretValueProperties `json:"properties"`
}

// NewSecretValueResourceDescription returns a description with its
// required fields set.
func NewSecretValueResourceDescription(name string, value api.SecureString) *SecretValueResourceDescription {
	return &SecretValueResourceDescription{
		Name: name,
		Properties: SecretValueProperties{
			Value: &value,
		},
	}
}

// PagedSecretValueResourceDescriptionList is the list of values of a
// secret resource.
type PagedSecretValueResourceDescriptionList struct {
	ContinuationToken *string                          `json:"ContinuationToken,omitempty"`
	Items             []SecretValueResourceDescription `json:"Items,omitempty"`
}

// SecretValue is the actual value of the secret.
type SecretValue struct {
	Value *api.SecureString `json:"value,omitempty"`
}

// VolumeProviderParametersAzureFile describes the parameters for using an
// Azure Files file share as a volume.
type VolumeProviderParametersAzureFile struct {
	AccountName string            `json:"accountName"`
	AccountKey  *api.SecureString `json:"accountKey,omitempty"`
	ShareName   string            `json:"shareName"`
}

// VolumeProperties describes properties of a volume resource.
type VolumeProperties struct {
	Description         *string                            `json:"description,omitempty"`
	Status              *ResourceStatus                    `json:"status,omitempty"`
	StatusDetails       *string                            `json:"statusDetails,omitempty"`
	Provider            VolumeProvider                     `json:"provider"`
	AzureFileParameters *VolumeProviderParametersAzureFile `json:"azureFileParameters,omitempty"`
}

// VolumeResourceDescription describes a volume resource.
type VolumeResourceDescription struct {
	Name       string           `json:"name"`
	Properties VolumeProperties `json:"properties"`
}

// NewVolumeResourceDescription returns an Azure Files backed volume.
func NewVolumeResourceDescription(name, accountName, shareName string) *VolumeResourceDescription {
	return &VolumeResourceDescription{
		Name: name,
		Properties: VolumeProperties{
			Provider: VolumeProviderSFAzureFile,
			AzureFileParameters: &VolumeProviderParametersAzureFile{
				AccountName: accountName,
				ShareName:   shareName,
			},
		},
	}
}

// PagedVolumeResourceDescriptionList is the list of volume resources.
type PagedVolumeResourceDescriptionList struct {
	ContinuationToken *string                     `json:"ContinuationToken,omitempty"`
	Items             []VolumeResourceDescription `json:"Items,omitempty"`
}

// BasicNetworkResourceProperties is implemented by every network kind.
type BasicNetworkResourceProperties interface {
	GetNetworkResourceProperties() *NetworkResourceProperties
}

// NetworkResourceProperties describes properties of a network resource.
type NetworkResourceProperties struct {
	Kind          NetworkKind     `json:"kind"`
	Description   *string         `json:"description,omitempty"`
	Status        *ResourceStatus `json:"status,omitempty"`
	StatusDetails *string         `json:"statusDetails,omitempty"`
}

// GetNetworkResourceProperties returns n.
func (n *NetworkResourceProperties) GetNetworkResourceProperties() *NetworkResourceProperties {
	return n
}

// LocalNetworkResourceProperties is information about a Service Fabric
// container network local to a single Service Fabric cluster.
type LocalNetworkResourceProperties struct {
	NetworkResourceProperties
	NetworkAddressPrefix *string `json:"networkAddressPrefix,omitempty"`
}

// MarshalJSON sets the kind discriminator.
func (l LocalNetworkResourceProperties) MarshalJSON() ([]byte, error) {
	type alias LocalNetworkResourceProperties
	l.Kind = NetworkKindLocal
	return json.Marshal(alias(l))
}

var networkResourcePropertiesFactories = map[string]func() BasicNetworkResourceProperties{
	string(NetworkKindLocal): func() BasicNetworkResourceProperties { return &LocalNetworkResourceProperties{} },
}

// UnmarshalNetworkResourceProperties decodes network properties by their
// kind.
func UnmarshalNetworkResourceProperties(b []byte) (BasicNetworkResourceProperties, error) {
	return api.UnmarshalPolymorphic(b, "kind", networkResourcePropertiesFactories, func() BasicNetworkResourceProperties {
		return &NetworkResourceProperties{}
	})
}

// NetworkResourceDescription describes a network resource.
type NetworkResourceDescription struct {
	Name       string                         `json:"name"`
	Properties BasicNetworkResourceProperties `json:"properties"`
}

// UnmarshalJSON decodes n including its properties.
func (n *NetworkResourceDescription) UnmarshalJSON(b []byte) (err error) {
	var v struct {
		Name       string          `json:"name"`
		Properties json.RawMessage `json:"properties"`
	}
	if err = json.Unmarshal(b, &v); err != nil {
		return err
	}

	n.Name = v.Name
	n.Properties = nil
	if len(v.Properties) > 0 {
		n.Properties, err = UnmarshalNetworkResourceProperties(v.Properties)
	}
	return err
}

// PagedNetworkResourceDescriptionList is the list of network resources.
type PagedNetworkResourceDescriptionList struct {
	ContinuationToken *string                      `json:"ContinuationToken,omitempty"`
	Items             []NetworkResourceDescription `json:"Items,omitempty"`
}

// GatewayDestination describes destination endpoint for routing traffic.
type GatewayDestination struct {
	ApplicationName string `json:"applicationName"`
	ServiceName     string `json:"serviceName"`
	EndpointName    string `json:"endpointName"`
}

// TCPConfig describes the tcp configuration for external connectivity for
// this network.
type TCPConfig struct {
	Name        string             `json:"name"`
	Port        int32              `json:"port"`
	Destination GatewayDestination `json:"destination"`
}

// HTTPRouteMatchPath is the path to match for routing.
type HTTPRouteMatchPath struct {
	Value   string        `json:"value"`
	Rewrite *string       `json:"rewrite,omitempty"`
	Type    PathMatchType `json:"type"`
}

// HTTPRouteMatchHeader describes a header information for matching
// routing.
type HTTPRouteMatchHeader struct {
	Name  string           `json:"name"`
	Value *string          `json:"value,omitempty"`
	Type  *HeaderMatchType `json:"type,omitempty"`
}

// HTTPRouteMatchRule describes a rule for http route matching.
type HTTPRouteMatchRule struct {
	Path    HTTPRouteMatchPath     `json:"path"`
	Headers []HTTPRouteMatchHeader `json:"headers,omitempty"`
}

// HTTPRouteConfig describes the hostname properties for http routing.
type HTTPRouteConfig struct {
	Name        string             `json:"name"`
	Match       HTTPRouteMatchRule `json:"match"`
	Destination GatewayDestination `json:"destination"`
}

// HTTPHostConfig describes the hostname properties for http routing.
type HTTPHostConfig struct {
	Name   string            `json:"name"`
	Routes []HTTPRouteConfig `json:"routes"`
}

// HTTPConfig describes the http configuration for external connectivity
// for this network.
type HTTPConfig struct {
	Name  string           `json:"name"`
	Port  int32            `json:"port"`
	Hosts []HTTPHostConfig `json:"hosts"`
}

// GatewayProperties describes properties of a gateway resource.
type GatewayProperties struct {
	Description        *string         `json:"description,omitempty"`
	SourceNetwork      NetworkRef      `json:"sourceNetwork"`
	DestinationNetwork NetworkRef      `json:"destinationNetwork"`
	TCP                []TCPConfig     `json:"tcp,omitempty"`
	HTTP               []HTTPConfig    `json:"http,omitempty"`
	Status             *ResourceStatus `json:"status,omitempty"`
	StatusDetails      *string         `json:"statusDetails,omitempty"`
	IPAddress          *string         `json:"ipAddress,omitempty"`
}

// GatewayResourceDescription describes a gateway resource.
type GatewayResourceDescription struct {
	Name       string            `json:"name"`
	Properties GatewayProperties `json:"properties"`
}

// PagedGatewayResourceDescriptionList is the list of gateway resources.
type PagedGatewayResourceDescriptionList struct {
	ContinuationToken *string                      `json:"ContinuationToken,omitempty"`
	Items             []GatewayResourceDescription `json:"Items,omitempty"`
}
