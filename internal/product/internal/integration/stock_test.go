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
	"github.com/shophub/shophub/internal/product/internal/domain"
	"github.com/shophub/shophub/internal/product/internal/repository/dao"
	testioc "github.com/shophub/shophub/internal/test/ioc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestStockDAO(t *testing.T) {
	suite.Run(t, new(StockDAOTestSuite))
}

type StockDAOTestSuite struct {
	suite.Suite
	db  *egorm.Component
	dao dao.ProductDAO
}

func (s *StockDAOTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	require.NoError(s.T(), dao.InitTables(s.db))
	s.dao = dao.NewProductGORMDAO(s.db)
}

func (s *StockDAOTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *StockDAOTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `products`").Error
	require.NoError(s.T(), err)
}

func (s *StockDAOTestSuite) seedProduct(id, stock int64) {
	err := s.db.Create(&dao.Product{
		Id:     id,
		Name:   "手机",
		Price:  10000,
		Stock:  stock,
		Status: domain.StatusOnShelf.ToUint8(),
	}).Error
	require.NoError(s.T(), err)
}

func (s *StockDAOTestSuite) stockOf(id int64) int64 {
	var p dao.Product
	require.NoError(s.T(), s.db.Where("id = ?", id).First(&p).Error)
	return p.Stock
}

func (s *StockDAOTestSuite) TestDecrementStock() {
	t := s.T()
	s.seedProduct(1, 10)

	err := s.dao.DecrementStock(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(7), s.stockOf(1))
}

func (s *StockDAOTestSuite) TestDecrementStock_Insufficient() {
	t := s.T()
	s.seedProduct(1, 2)

	err := s.dao.DecrementStock(context.Background(), 1, 3)
	assert.ErrorIs(t, err, dao.ErrInsufficientStock)
	// 条件更新没有命中, 库存保持原样
	assert.Equal(t, int64(2), s.stockOf(1))
}

// TestDecrementStock_LastUnit 两个并发请求抢最后一件,
// 条件更新保证恰好一个成功, 库存不会被扣成负数
func (s *StockDAOTestSuite) TestDecrementStock_LastUnit() {
	t := s.T()
	s.seedProduct(1, 1)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = s.dao.DecrementStock(context.Background(), 1, 1)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			assert.ErrorIs(t, err, dao.ErrInsufficientStock)
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicted)
	assert.Equal(t, int64(0), s.stockOf(1))
}

func (s *StockDAOTestSuite) TestIncrementStock() {
	t := s.T()
	s.seedProduct(1, 5)

	require.NoError(t, s.dao.IncrementStock(context.Background(), 1, 2))
	assert.Equal(t, int64(7), s.stockOf(1))
}
