package storage

import "context"

type tokenKey struct{}

// ContextWithToken attaches the bearer token used by repositories that call the
// clinic backend on behalf of the signed-in user.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey{}).(string)
	return token
}
