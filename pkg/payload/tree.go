package payload

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Fan-out of a generated RootModel.
const (
	SubModelsPerRoot = 20
	ItemsPerSubModel = 10
	DetailsPerItem   = 5
	LeavesPerRoot    = SubModelsPerRoot * ItemsPerSubModel * DetailsPerItem

	PropertiesPerRoot = 10
)

// MaxTimestampAge bounds how far into the past generated timestamps go.
const MaxTimestampAge = 30 * 24 * time.Hour

// Numeric bounds for randomized fields.
const (
	MinQuantity = 1
	MaxQuantity = 100
	MinPrice    = 1.0
	MaxPrice    = 1000.0
	MinCount    = 0
	MaxCount    = 1000
	MinScore    = 0.0
	MaxScore    = 1.0
)

// ConfigKeys are the fixed keys of every SubModel.Config.
var ConfigKeys = [...]string{"environment", "region", "tier", "owner"}

// RootModel is the root of a record tree built by Generator.Tree.
type RootModel struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name"`
	Properties map[string]Value `json:"properties"`
	SubModels  []SubModel       `json:"subModels"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// SubModel is a configured group of items under a RootModel.
type SubModel struct {
	ID        uuid.UUID         `json:"id"`
	Config    map[string]string `json:"config"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	Items     []Item            `json:"items"`
}

// Item is a priced entry of a SubModel.
type Item struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Quantity int       `json:"quantity"`
	Price    float64   `json:"price"`
	Details  []Detail  `json:"details"`
}

// Detail is a leaf record of the tree.
type Detail struct {
	ID         uuid.UUID `json:"id"`
	Score      float64   `json:"score"`
	Count      int       `json:"count"`
	Enabled    bool      `json:"enabled"`
	Label      string    `json:"label"`
	RecordedAt time.Time `json:"recordedAt"`
}

// LeafCount returns the number of Detail records under r.
func (r RootModel) LeafCount() int {
	n := 0
	for _, sm := range r.SubModels {
		for _, it := range sm.Items {
			n += len(it.Details)
		}
	}
	return n
}

// Tree builds a RootModel with the full fixed fan-out.
func (g *Generator) Tree() RootModel {
	now := g.now()

	root := RootModel{
		ID:         g.src.UUID(),
		Name:       "Root " + g.randomString(),
		Properties: g.properties(),
		SubModels:  make([]SubModel, SubModelsPerRoot),
		CreatedAt:  g.pastTime(now),
	}
	for i := range root.SubModels {
		root.SubModels[i] = g.subModel(now)
	}
	return root
}

// properties cycles through the four value kinds.
func (g *Generator) properties() map[string]Value {
	props := make(map[string]Value, PropertiesPerRoot)
	for i := 0; i < PropertiesPerRoot; i++ {
		var v Value
		switch i % 4 {
		case 0:
			v = IntValue(int64(g.src.IntRange(MinCount, MaxCount)))
		case 1:
			v = FloatValue(g.src.FloatRange(MinScore, MaxScore))
		case 2:
			v = StringValue(g.randomString())
		default:
			v = BoolValue(g.src.Bool())
		}
		props["property_"+strconv.Itoa(i)] = v
	}
	return props
}

func (g *Generator) subModel(now time.Time) SubModel {
	config := make(map[string]string, len(ConfigKeys))
	for _, k := range ConfigKeys {
		config[k] = g.randomString()
	}

	created := g.pastTime(now)
	sm := SubModel{
		ID:        g.src.UUID(),
		Config:    config,
		CreatedAt: created,
		UpdatedAt: created.Add(g.src.Duration(now.Sub(created))),
		Items:     make([]Item, ItemsPerSubModel),
	}
	for i := range sm.Items {
		sm.Items[i] = g.item(now)
	}
	return sm
}

func (g *Generator) item(now time.Time) Item {
	it := Item{
		ID:       g.src.UUID(),
		Name:     "Item " + g.randomString(),
		Quantity: g.src.IntRange(MinQuantity, MaxQuantity),
		Price:    g.src.FloatRange(MinPrice, MaxPrice),
		Details:  make([]Detail, DetailsPerItem),
	}
	for i := range it.Details {
		it.Details[i] = Detail{
			ID:         g.src.UUID(),
			Score:      g.src.FloatRange(MinScore, MaxScore),
			Count:      g.src.IntRange(MinCount, MaxCount),
			Enabled:    g.src.Bool(),
			Label:      g.randomString(),
			RecordedAt: g.pastTime(now),
		}
	}
	return it
}
