package xcontext

import "context"

type (
	requestIDKey struct{}
	profileKey   struct{}
)

func SetRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey{}).(string)
	return requestID, ok
}

// SetProfile records which credential profile authenticated the request.
func SetProfile(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, profileKey{}, name)
}

func GetProfile(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(profileKey{}).(string)
	return name, ok
}
