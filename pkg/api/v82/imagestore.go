package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// FileVersion is information about the version of image store file.
type FileVersion struct {
	VersionNumber            *string `json:"VersionNumber,omitempty"`
	EpochDataLossNumber      *string `json:"EpochDataLossNumber,omitempty"`
	EpochConfigurationNumber *string `json:"EpochConfigurationNumber,omitempty"`
}

// FileInfo is information about an image store file.
type FileInfo struct {
	FileSize          *string      `json:"FileSize,omitempty"`
	FileVersion       *FileVersion `json:"FileVersion,omitempty"`
	ModifiedDate      *string      `json:"ModifiedDate,omitempty"`
	StoreRelativePath *string      `json:"StoreRelativePath,omitempty"`
}

// FolderInfo is information about an image store folder. It includes how
// many files this folder contains and its image store relative path.
type FolderInfo struct {
	StoreRelativePath *string `json:"StoreRelativePath,omitempty"`
	FileCount         *string `json:"FileCount,omitempty"`
}

// ImageStoreContent is information about the image store content.
type ImageStoreContent struct {
	StoreFiles   []FileInfo   `json:"StoreFiles,omitempty"`
	StoreFolders []FolderInfo `json:"StoreFolders,omitempty"`
}

// PagedImageStoreInfoList is the paged image store content of a folder.
type PagedImageStoreInfoList struct {
	ContinuationToken *string      `json:"ContinuationToken,omitempty"`
	StoreFiles        []FileInfo   `json:"StoreFiles,omitempty"`
	StoreFolders      []FolderInfo `json:"StoreFolders,omitempty"`
}

// ImageStoreCopyDescription is information about an image store copy
// operation.
type ImageStoreCopyDescription struct {
	RemoteSource      string   `json:"RemoteSource"`
	RemoteDestination string   `json:"RemoteDestination"`
	SkipFiles         []string `json:"SkipFiles,omitempty"`
	CheckMarkFile     *bool    `json:"CheckMarkFile,omitempty"`
}

// NewImageStoreCopyDescription returns a description with its required
// fields set.
func NewImageStoreCopyDescription(remoteSource, remoteDestination string) *ImageStoreCopyDescription {
	return &ImageStoreCopyDescription{
		RemoteSource:      remoteSource,
		RemoteDestination: remoteDestination,
	}
}
