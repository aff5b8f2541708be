package roster

// ListKind names one of the persisted option lists
type ListKind string

const (
	// ListPlayers is the player wheel's options
	ListPlayers ListKind = "players"

	// ListDrinks is the drink wheel's options
	ListDrinks ListKind = "drinks"
)

// Valid reports whether k is a known list
func (k ListKind) Valid() bool {
	return k == ListPlayers || k == ListDrinks
}

// GetListInput contains parameters for loading a list
type GetListInput struct {
	Kind ListKind
}

// GetListOutput contains the loaded list
type GetListOutput struct {
	Items []string
}

// SaveListInput contains parameters for saving a list
type SaveListInput struct {
	Kind  ListKind
	Items []string
}
