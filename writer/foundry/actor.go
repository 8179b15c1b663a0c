package foundry

// Actor is an Archmage-system NPC actor document as imported by Foundry VTT.
type Actor struct {
	Name   string `json:"name" jsonschema:"minLength=1"`
	Type   string `json:"type" jsonschema:"enum=npc"`
	Img    string `json:"img,omitempty"`
	Folder string `json:"folder,omitempty"`
	System System `json:"system"`
	Items  []Item `json:"items"`
}

// System holds the actor's game data.
type System struct {
	Attributes Attributes `json:"attributes"`
	Details    Details    `json:"details"`
}

// Attributes holds the numeric statistics. Values come from the leading
// number of each defense; qualifiers live in the details.
type Attributes struct {
	AC    IntValue  `json:"ac"`
	PD    IntValue  `json:"pd"`
	MD    IntValue  `json:"md"`
	HP    HitPoints `json:"hp"`
	Init  IntValue  `json:"init"`
	Level IntValue  `json:"level"`
}

// HitPoints tracks current and maximum hit points.
type HitPoints struct {
	Value int `json:"value"`
	Max   int `json:"max"`
}

// Details holds the descriptive fields.
type Details struct {
	Size          StringValue `json:"size"`
	Role          StringValue `json:"role"`
	Type          StringValue `json:"type"`
	Vulnerability StringValue `json:"vulnerability"`
	Biography     StringValue `json:"biography"`
	Mook          BoolValue   `json:"mook"`

	// Defenses keeps the display strings, qualifiers included.
	Defenses DefenseText `json:"defenses"`
}

// DefenseText is the display form of each defense, e.g. "27 (in lair: 25)".
type DefenseText struct {
	AC string `json:"ac"`
	PD string `json:"pd"`
	MD string `json:"md"`
	HP string `json:"hp"`
}

// IntValue is Foundry's {"value": n} wrapper.
type IntValue struct {
	Value int `json:"value"`
}

// StringValue is Foundry's {"value": "..."} wrapper.
type StringValue struct {
	Value string `json:"value"`
}

// BoolValue is Foundry's {"value": true} wrapper.
type BoolValue struct {
	Value bool `json:"value"`
}

// Item types.
const (
	ItemAction         = "action"
	ItemTrait          = "trait"
	ItemNastierSpecial = "nastierSpecial"
)

// Action groups.
const (
	GroupPrimary   = "primary"
	GroupTriggered = "triggered"
)

// Item is an embedded action, trait or nastier special.
type Item struct {
	Name   string     `json:"name"`
	Type   string     `json:"type" jsonschema:"enum=action,enum=trait,enum=nastierSpecial"`
	System ItemSystem `json:"system"`
}

// ItemSystem is the item's game data. Actions fill Attack, Hit and the
// follow-up clauses; traits fill Description only.
type ItemSystem struct {
	Group       string   `json:"group,omitempty" jsonschema:"enum=primary,enum=triggered"`
	Attack      string   `json:"attack,omitempty"`
	Hit         string   `json:"hit,omitempty"`
	Miss        string   `json:"miss,omitempty"`
	Clauses     []Clause `json:"clauses,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Clause is a named follow-up such as "Natural even hit".
type Clause struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}
