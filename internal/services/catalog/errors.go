package catalog

// CatalogError is a custom error type for catalog errors
type CatalogError string

// Error implements the error interface
func (e CatalogError) Error() string {
	return string(e)
}

const (
	ErrFeatureNotFound  CatalogError = "feature not found"
	ErrNilConfig        CatalogError = "config cannot be nil"
	ErrNilFeatureRepo   CatalogError = "feature repository cannot be nil"
	ErrNilRandom        CatalogError = "random source cannot be nil"
	ErrNilUUIDGenerator CatalogError = "UUID generator cannot be nil"
)
