package models

// Rarity classifies a lucky box prize
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityLegendary Rarity = "legendary"
)

// LuckyBoxItem is a prize that can come out of a box
type LuckyBoxItem struct {
	Name        string  `yaml:"name"`
	Value       int64   `yaml:"value"`
	Probability float64 `yaml:"probability"`
	Rarity      Rarity  `yaml:"rarity"`
}

// LuckyBox is a purchasable box with a prize table
type LuckyBox struct {
	ID    int            `yaml:"id"`
	Name  string         `yaml:"name"`
	Price int64          `yaml:"price"`
	Color string         `yaml:"color,omitempty"`
	Items []LuckyBoxItem `yaml:"items"`
}
