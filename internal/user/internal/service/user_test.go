// Copyright 2024 shophub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"context"
	"testing"

	"github.com/shophub/shophub/internal/user/internal/domain"
	"github.com/shophub/shophub/internal/user/internal/event"
	evtmocks "github.com/shophub/shophub/internal/user/internal/event/mocks"
	"github.com/shophub/shophub/internal/user/internal/repository"
	repomocks "github.com/shophub/shophub/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	t.Run("注册成功", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, "tom@example.com", u.Email)
				assert.Equal(t, domain.RoleCustomer, u.Role)
				assert.NotEmpty(t, u.SN)
				// 落库的必须是密文
				assert.NotEqual(t, "hello#world123", u.Password)
				require.NoError(t, bcrypt.CompareHashAndPassword(
					[]byte(u.Password), []byte("hello#world123")))
				return int64(7), nil
			})
		producer.EXPECT().Produce(gomock.Any(),
			event.RegistrationEvent{Uid: 7, Email: "tom@example.com"}).Return(nil)

		svc := NewUserService(repo, producer)
		u, err := svc.Register(context.Background(),
			domain.User{Email: "tom@example.com", Nickname: "tom"}, "hello#world123")
		require.NoError(t, err)
		assert.Equal(t, int64(7), u.Id)
		assert.Equal(t, "tom", u.Nickname)
	})

	t.Run("邮箱重复", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(int64(0), repository.ErrUserDuplicate)

		svc := NewUserService(repo, producer)
		_, err := svc.Register(context.Background(),
			domain.User{Email: "tom@example.com"}, "hello#world123")
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("没传昵称用序列号前缀", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := repomocks.NewMockUserRepository(ctrl)
		producer := evtmocks.NewMockRegistrationEventProducer(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
				assert.Equal(t, u.SN[:4], u.Nickname)
				return int64(8), nil
			})
		producer.EXPECT().Produce(gomock.Any(), gomock.Any()).Return(nil)

		svc := NewUserService(repo, producer)
		_, err := svc.Register(context.Background(),
			domain.User{Email: "anon@example.com"}, "hello#world123")
		require.NoError(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	stored := domain.User{
		Id:       7,
		Email:    "tom@example.com",
		Password: string(hash),
		Role:     domain.RoleCustomer,
	}

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		email    string
		password string
		wantErr  error
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "tom@example.com").
					Return(stored, nil)
				return repo
			},
			email:    "tom@example.com",
			password: "hello#world123",
		},
		{
			name: "密码不对",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "tom@example.com").
					Return(stored, nil)
				return repo
			},
			email:    "tom@example.com",
			password: "wrong-password",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "邮箱没注册过",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "nobody@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			email:    "nobody@example.com",
			password: "hello#world123",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl), evtmocks.NewMockRegistrationEventProducer(ctrl))
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, int64(7), u.Id)
				// 登录结果不带密文
				assert.Empty(t, u.Password)
			}
		})
	}
}
