package creem

import "context"

type licenseService struct {
	client *Client
}

func (s *licenseService) Validate(ctx context.Context, key string, instanceID string) (Object, error) {
	const route = "/licenses/validate"
	return s.client.post(ctx, route, Object{"key": key, "instance_id": instanceID})
}

func (s *licenseService) Activate(ctx context.Context, key string, instanceName string) (Object, error) {
	const route = "/licenses/activate"
	return s.client.post(ctx, route, Object{"key": key, "instance_name": instanceName})
}

func (s *licenseService) Deactivate(ctx context.Context, key string, instanceID string) (Object, error) {
	const route = "/licenses/deactivate"
	return s.client.post(ctx, route, Object{"key": key, "instance_id": instanceID})
}
