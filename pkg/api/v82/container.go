package v82

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// ContainerLogs is the container logs.
type ContainerLogs struct {
	Content *string `json:"Content,omitempty"`
}

// ContainerAPIRequestBody is the parameters for making a container API
// call.
type ContainerAPIRequestBody struct {
	HTTPVerb    *string `json:"HttpVerb,omitempty"`
	URIPath     string  `json:"UriPath"`
	ContentType *string `json:"Content-Type,omitempty"`
	Body        *string `json:"Body,omitempty"`
}

// NewContainerAPIRequestBody returns a GET request body for uriPath.
func NewContainerAPIRequestBody(uriPath string) *ContainerAPIRequestBody {
	return &ContainerAPIRequestBody{
		URIPath: uriPath,
	}
}

// ContainerAPIResult is the container API result.
type ContainerAPIResult struct {
	Status          int32   `json:"Status"`
	ContentType     *string `json:"Content-Type,omitempty"`
	ContentEncoding *string `json:"Content-Encoding,omitempty"`
	Body            *string `json:"Body,omitempty"`
}

// ContainerAPIResponse is the response body that wraps container API
// result.
type ContainerAPIResponse struct {
	ContainerAPIResult ContainerAPIResult `json:"ContainerApiResult"`
}
