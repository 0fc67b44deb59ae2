package infra

import "context"

type UserClientInterface interface {
	GetUserById(ctx context.Context, id int64) (*UserInfo, error)
}

var _ UserClientInterface = (*UserClient)(nil)
