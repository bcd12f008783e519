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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/shophub/shophub/internal/user/internal/domain"
	"github.com/shophub/shophub/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
}

func NewHandler(userSvc service.UserService) *Handler {
	return &Handler{
		userSvc: userSvc,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.userSvc.Register(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Nickname: req.Nickname,
		Phone:    req.Phone,
	}, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			return duplicateEmailResult, nil
		}
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return invalidCredentialsResult, nil
		}
		return systemErrorResult, err
	}
	if err = h.newSession(ctx, u); err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: h.toProfile(u)}, nil
}

// newSession 把角色放进 jwt, 管理端靠它做权限校验
func (h *Handler) newSession(ctx *ginx.Context, u domain.User) error {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": u.Role,
		}).Build()
	return err
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: h.toProfile(u),
	}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	err := h.userSvc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
		Phone:    req.Phone,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) toProfile(u domain.User) Profile {
	return Profile{
		Id:       u.Id,
		Email:    u.Email,
		Nickname: u.Nickname,
		Avatar:   u.Avatar,
		Phone:    u.Phone,
		IsAdmin:  u.IsAdmin(),
	}
}
