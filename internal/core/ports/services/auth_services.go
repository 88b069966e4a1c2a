package services

// TokenSvc issues signed access tokens for authenticated users.
type TokenSvc interface {
	// GenerateAccessToken creates a signed JWT for the user.
	GenerateAccessToken(userID string) (string, error)
}
