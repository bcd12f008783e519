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
	"errors"

	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"github.com/shophub/shophub/internal/user/internal/domain"
	"github.com/shophub/shophub/internal/user/internal/event"
	"github.com/shophub/shophub/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrDuplicateEmail 邮箱已经注册过了
	ErrDuplicateEmail = repository.ErrUserDuplicate
	// ErrInvalidCredentials 邮箱或密码不对, 不区分是哪个错了
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Register 注册一个买家账号, 密码 bcrypt 加密后落库
	Register(ctx context.Context, u domain.User, password string) (domain.User, error)
	// Login 校验邮箱密码, 成功返回用户信息
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新非敏感数据, 改不了邮箱、密码和角色
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	// Total 注册用户总数
	Total(ctx context.Context) (int64, error)
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.SN = shortuuid.New()
	u.Password = string(hash)
	u.Role = domain.RoleCustomer
	if u.Nickname == "" {
		u.Nickname = u.SN[:4]
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id

	// 发送注册成功消息
	evt := event.RegistrationEvent{Uid: id, Email: u.Email}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 不让修改序列号
	user.SN = ""
	return svc.repo.Update(ctx, user)
}

func (svc *userService) Total(ctx context.Context) (int64, error) {
	return svc.repo.Total(ctx)
}

func (svc *userService) Profile(ctx context.Context,
	id int64) (domain.User, error) {
	// 在系统内部, 基本上都是用 ID 的
	return svc.repo.FindById(ctx, id)
}
