package integration_test

const (
	// User related constants
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	TestAdminEmail = "admin@example.com"

	// Favorite related constants
	TestFavoriteIMDbID = "tt0111161"
	TestFavoriteTitle  = "The Shawshank Redemption"

	// Catalog related constants
	SeededMovieCount = 12
)
