package foundry

import "github.com/invopop/jsonschema"

// SchemaID identifies the actor schema.
const SchemaID = "urn:statkit:foundry-actor"

// Schema reflects the JSON Schema of the actor documents Write produces.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct: true,
	}
	s := r.Reflect(&Actor{})
	s.ID = jsonschema.ID(SchemaID)
	s.Title = "Archmage NPC actor"
	s.Description = "Foundry VTT actor document converted from a 13th Age statblock."
	return s
}
