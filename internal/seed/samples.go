// Package seed loads sample seashells from the built-in set, a JSON file or
// an S3 object and inserts them through the seashell service.
package seed

import "github.com/dmitrijs2005/seashells/internal/server/models"

func ptr(s string) *string { return &s }

// Builtin is the default sample collection.
var Builtin = []models.SeashellCreate{
	{Name: "Queen Conch", Species: "Strombus gigas", Description: ptr("Large tropical sea snail with beautiful pink interior")},
	{Name: "Tiger Cowrie", Species: "Cypraea tigris", Description: ptr("Glossy shell with distinctive tiger-like spots")},
	{Name: "Nautilus", Species: "Nautilus pompilius", Description: ptr("Ancient mollusk with chambered spiral shell")},
	{Name: "Scallop", Species: "Pecten maximus", Description: ptr("Fan-shaped shell with radiating ribs")},
	{Name: "Abalone", Species: "Haliotis rufescens", Description: ptr("Ear-shaped shell with iridescent interior")},
	{Name: "Murex", Species: "Murex pecten", Description: ptr("Spiny shell historically used for purple dye")},
	{Name: "Cone Shell", Species: "Conus textile", Description: ptr("Beautifully patterned but venomous sea snail")},
	{Name: "Triton's Trumpet", Species: "Charonia tritonis", Description: ptr("Large shell used as musical instrument")},
}
