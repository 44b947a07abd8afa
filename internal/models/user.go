package models

// User represents the AWS::Transfer::User resource model.
// Identified by ServerId + UserName.
type User struct {
	ServerID *string `json:"ServerId,omitempty" mapstructure:"ServerId" validate:"required,serverid"`
	UserName *string `json:"UserName,omitempty" mapstructure:"UserName" validate:"required,transferusername"`
	Arn      *string `json:"Arn,omitempty" mapstructure:"Arn"`

	Role                  *string                 `json:"Role,omitempty" mapstructure:"Role" validate:"required,iamrolearn"`
	HomeDirectory         *string                 `json:"HomeDirectory,omitempty" mapstructure:"HomeDirectory" validate:"omitempty,max=1024,startswith=/"`
	HomeDirectoryType     *string                 `json:"HomeDirectoryType,omitempty" mapstructure:"HomeDirectoryType" validate:"omitempty,oneof=PATH LOGICAL"`
	HomeDirectoryMappings []HomeDirectoryMapEntry `json:"HomeDirectoryMappings,omitempty" mapstructure:"HomeDirectoryMappings" validate:"omitempty,max=50000,dive"`
	Policy                *string                 `json:"Policy,omitempty" mapstructure:"Policy" validate:"omitempty,max=2048"`
	PosixProfile          *PosixProfile           `json:"PosixProfile,omitempty" mapstructure:"PosixProfile"`
	SshPublicKeys         []string                `json:"SshPublicKeys,omitempty" mapstructure:"SshPublicKeys" validate:"omitempty,max=50,unique,dive,max=2048"`
	Tags                  []Tag                   `json:"Tags,omitempty" mapstructure:"Tags" validate:"omitempty,max=50,dive"`
}

// HomeDirectoryMapEntry maps a logical path the user sees to a bucket or file system path
type HomeDirectoryMapEntry struct {
	Entry  *string `json:"Entry,omitempty" mapstructure:"Entry" validate:"required,max=1024,startswith=/"`
	Target *string `json:"Target,omitempty" mapstructure:"Target" validate:"required,max=1024,startswith=/"`
	Type   *string `json:"Type,omitempty" mapstructure:"Type" validate:"omitempty,oneof=FILE DIRECTORY"`
}

// PosixProfile is the POSIX identity used for EFS access.
// Ids are float64 in the model and narrowed to int64 on the wire.
type PosixProfile struct {
	UID           *float64  `json:"Uid,omitempty" mapstructure:"Uid" validate:"required,min=0"`
	GID           *float64  `json:"Gid,omitempty" mapstructure:"Gid" validate:"required,min=0"`
	SecondaryGIDs []float64 `json:"SecondaryGids,omitempty" mapstructure:"SecondaryGids" validate:"omitempty,max=16,dive,min=0"`
}
