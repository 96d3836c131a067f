// Copyright (c) 2026 Memora. All rights reserved.
// Author: dev@memora.app

package language

import "strings"

// Language represents a spoken/written language supported by the system.
type Language struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// NormalizeCode canonicalizes a user-supplied language code for lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
