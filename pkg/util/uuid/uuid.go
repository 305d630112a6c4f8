package uuid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gofrsuuid "github.com/gofrs/uuid"
)

func MustFromString(u string) gofrsuuid.UUID {
	return gofrsuuid.Must(gofrsuuid.FromString(u))
}

func IsValid(u string) bool {
	_, err := gofrsuuid.FromString(u)
	return err == nil
}
