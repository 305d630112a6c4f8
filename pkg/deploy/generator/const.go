package generator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	FileOpenAI    = "openai.json"
	FileStorage   = "storage.json"
	FileSearch    = "search.json"
	FileGateway   = "gateway.json"
	FileWorkspace = "workspace.json"
	FileRBAC      = "rbac.json"
)

// Files lists every artifact the generator produces, in deployment order.
var Files = []string{
	FileOpenAI,
	FileStorage,
	FileSearch,
	FileGateway,
	FileWorkspace,
	FileRBAC,
}
