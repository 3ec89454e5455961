package complete_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/slok/todo/internal/app/complete"
	"github.com/slok/todo/internal/log"
	"github.com/slok/todo/internal/model"
	"github.com/slok/todo/internal/storage/storagemock"
)

func TestService_Run(t *testing.T) {
	tests := map[string]struct {
		mock   func(m *storagemock.MockRepository)
		req    complete.Request
		expRes *complete.Response
		expErr bool
	}{
		"an existing task should be toggled": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ToggleTask", mock.Anything, 1).Once().Return(&model.Task{ID: 1, Text: "Test task", Done: true}, nil)
			},
			req: complete.Request{ID: 1},
			expRes: &complete.Response{
				Result: model.ChangeResultApplied,
				Task:   &model.Task{ID: 1, Text: "Test task", Done: true},
			},
		},
		"a missing task should be ignored": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ToggleTask", mock.Anything, 9).Once().Return(nil, fmt.Errorf("task 9: %w", model.ErrNotFound))
			},
			req:    complete.Request{ID: 9},
			expRes: &complete.Response{Result: model.ChangeResultIgnored},
		},
		"repository error should propagate": {
			mock: func(m *storagemock.MockRepository) {
				m.On("ToggleTask", mock.Anything, 1).Once().Return(nil, fmt.Errorf("database error"))
			},
			req:    complete.Request{ID: 1},
			expErr: true,
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert := assert.New(t)
			require := require.New(t)

			m := storagemock.NewMockRepository(t)
			test.mock(m)

			svc, err := complete.NewService(complete.ServiceConfig{Repository: m, Logger: log.Noop})
			require.NoError(err)

			res, err := svc.Run(context.Background(), test.req)

			if test.expErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(test.expRes, res)
			}
		})
	}
}
