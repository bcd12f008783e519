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

//go:build e2e

package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/ego-component/egorm"
	"github.com/shophub/shophub/internal/order/internal/domain"
	"github.com/shophub/shophub/internal/order/internal/repository/dao"
	testioc "github.com/shophub/shophub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestOrderDAO(t *testing.T) {
	suite.Run(t, new(OrderDAOTestSuite))
}

type OrderDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.OrderDAO
}

func (s *OrderDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewOrderGORMDAO(s.db)
}

func (s *OrderDAOTestSuite) TearDownSuite() {
	require.NoError(s.T(), s.db.Exec("DROP TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("DROP TABLE `order_items`").Error)
}

func (s *OrderDAOTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `orders`").Error)
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `order_items`").Error)
}

func (s *OrderDAOTestSuite) seedOrder(sn string, status domain.OrderStatus) int64 {
	o := dao.Order{
		SN:      sn,
		BuyerId: 2024,
		Total:   25900,
		Status:  status.ToUint8(),
	}
	require.NoError(s.T(), s.db.Create(&o).Error)
	return o.Id
}

func (s *OrderDAOTestSuite) orderBySN(sn string) dao.Order {
	var o dao.Order
	require.NoError(s.T(), s.db.Where("sn = ?", sn).First(&o).Error)
	return o
}

// TestUpdateStatus_ConcurrentTransition 两个并发推进都以"已确认"为前置,
// CAS 保证只有一个赢家, 另一个拿到冲突错误
func (s *OrderDAOTestSuite) TestUpdateStatus_ConcurrentTransition() {
	t := s.T()
	oid := s.seedOrder("SN-CAS", domain.StatusConfirmed)

	targets := []domain.OrderStatus{domain.StatusShipped, domain.StatusCancelled}
	var wg sync.WaitGroup
	errs := make([]error, len(targets))
	for i, next := range targets {
		wg.Add(1)
		go func(idx int, next domain.OrderStatus) {
			defer wg.Done()
			errs[idx] = s.dao.UpdateStatus(context.Background(), oid,
				domain.StatusConfirmed.ToUint8(), next.ToUint8(), nil)
		}(i, next)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		default:
			assert.ErrorIs(t, err, dao.ErrConcurrentStatusChange)
			lost++
		}
	}
	assert.Equal(t, 1, won)
	assert.Equal(t, 1, lost)
}

func (s *OrderDAOTestSuite) TestUpdateStatus_StaleOldStatus() {
	t := s.T()
	oid := s.seedOrder("SN-STALE", domain.StatusShipped)

	// 前置状态已经对不上, 条件更新不命中
	err := s.dao.UpdateStatus(context.Background(), oid,
		domain.StatusConfirmed.ToUint8(), domain.StatusCancelled.ToUint8(), nil)
	assert.ErrorIs(t, err, dao.ErrConcurrentStatusChange)
	assert.Equal(t, domain.StatusShipped.ToUint8(), s.orderBySN("SN-STALE").Status)
}

func (s *OrderDAOTestSuite) TestMarkPaidBySN() {
	t := s.T()
	s.seedOrder("SN-PAY", domain.StatusPending)

	affected, err := s.dao.MarkPaidBySN(context.Background(), "SN-PAY", "pay_P1", 1756600000000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	o := s.orderBySN("SN-PAY")
	assert.Equal(t, "pay_P1", o.GatewayPaymentId)
	assert.Equal(t, int64(1756600000000), o.PaidAt)
	// 支付不推进配送状态
	assert.Equal(t, domain.StatusPending.ToUint8(), o.Status)
}

func (s *OrderDAOTestSuite) TestMarkPaidBySN_Replay() {
	t := s.T()
	s.seedOrder("SN-PAY", domain.StatusPending)

	affected, err := s.dao.MarkPaidBySN(context.Background(), "SN-PAY", "pay_P1", 1756600000000)
	require.NoError(t, err)
	require.Equal(t, int64(1), affected)

	// 网关重试同一个回调, 不再命中也不覆盖已有记录
	affected, err = s.dao.MarkPaidBySN(context.Background(), "SN-PAY", "pay_P2", 1756600001000)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.Equal(t, "pay_P1", s.orderBySN("SN-PAY").GatewayPaymentId)
}

// TestMarkPaidBySN_CancelledOrder 迟到的支付回调只落支付字段,
// 已取消的订单不会被改回任何配送状态
func (s *OrderDAOTestSuite) TestMarkPaidBySN_CancelledOrder() {
	t := s.T()
	s.seedOrder("SN-LATE", domain.StatusCancelled)

	affected, err := s.dao.MarkPaidBySN(context.Background(), "SN-LATE", "pay_P9", 1756600000000)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
	assert.Equal(t, domain.StatusCancelled.ToUint8(), s.orderBySN("SN-LATE").Status)
}
