package main

import (
	_ "embed"
	"strings"
)

// Help and usage text lives in msgs/ so it can be edited without touching
// command wiring.
var (
	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	// MsgUsageTemplate styles section headers via the template funcs
	// registered in initTemplateFormatting
	MsgUsageTemplate = strings.TrimSpace(msgUsageTemplateRaw)
)
