package dome9

// Region identifies an AWS region in Dome9's underscore form.
type Region string

// AWS regions.
const (
	RegionUSEast1      Region = "us_east_1"
	RegionUSEast2      Region = "us_east_2"
	RegionUSWest1      Region = "us_west_1"
	RegionUSWest2      Region = "us_west_2"
	RegionEUWest1      Region = "eu_west_1"
	RegionEUWest2      Region = "eu_west_2"
	RegionEUCentral1   Region = "eu_central_1"
	RegionAPSoutheast1 Region = "ap_southeast_1"
	RegionAPSoutheast2 Region = "ap_southeast_2"
	RegionAPNortheast1 Region = "ap_northeast_1"
	RegionAPNortheast2 Region = "ap_northeast_2"
	RegionAPSouth1     Region = "ap_south_1"
	RegionSAEast1      Region = "sa_east_1"
	RegionCACentral1   Region = "ca_central_1"
)

// Protocol is a network protocol usable in an access lease.
type Protocol string

// Lease protocols.
const (
	ProtocolAll    Protocol = "ALL"
	ProtocolTCP    Protocol = "TCP"
	ProtocolUDP    Protocol = "UDP"
	ProtocolICMP   Protocol = "ICMP"
	ProtocolICMPv6 Protocol = "ICMPV6"
)

// OperationMode is the Dome9 operation mode for an Azure account.
type OperationMode string

// Azure operation modes.
const (
	OperationModeRead    OperationMode = "Read"
	OperationModeManaged OperationMode = "Managed"
)

// ProtectionMode is the protection mode of a security group.
type ProtectionMode string

// Security group protection modes.
const (
	ProtectionModeFullManage ProtectionMode = "FullManage"
	ProtectionModeReadOnly   ProtectionMode = "ReadOnly"
)

// CloudAccountType identifies a cloud provider.
type CloudAccountType string

// Cloud providers.
const (
	CloudAccountTypeAWS    CloudAccountType = "Aws"
	CloudAccountTypeAzure  CloudAccountType = "Azure"
	CloudAccountTypeGoogle CloudAccountType = "Google"
)
