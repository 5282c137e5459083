package tools

import (
	"context"
	"testing"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNoteDeleterTool_Invoke(t *testing.T) {
	tests := map[string]struct {
		args            domain.ToolArguments
		setExpectations func(uow *domain.MockUnitOfWork, deleter *usecases.MockNoteDeleter)
		expected        domain.ToolResult
		expectedErr     error
	}{
		"success": {
			args: domain.ToolArguments{"id": testNoteID.String()},
			setExpectations: func(uow *domain.MockUnitOfWork, deleter *usecases.MockNoteDeleter) {
				runInUow(uow)
				deleter.EXPECT().Delete(mock.Anything, uow, testCaller.UserID, testNoteID).Return(nil)
			},
			expected: domain.NewToolSuccess("Note 11111111-0000-4000-8000-000000000001 deleted."),
		},
		"invalid-id": {
			args:            domain.ToolArguments{"id": "last one"},
			setExpectations: func(*domain.MockUnitOfWork, *usecases.MockNoteDeleter) {},
			expectedErr:     domain.NewValidationErr(`"last one" is not a valid note id`),
		},
		"other-owner": {
			args: domain.ToolArguments{"id": testNoteID.String()},
			setExpectations: func(uow *domain.MockUnitOfWork, deleter *usecases.MockNoteDeleter) {
				runInUow(uow)
				deleter.EXPECT().Delete(mock.Anything, uow, testCaller.UserID, testNoteID).
					Return(domain.NewForbiddenErr("note belongs to another user"))
			},
			expectedErr: domain.NewForbiddenErr("note belongs to another user"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			deleter := usecases.NewMockNoteDeleter(t)
			tt.setExpectations(uow, deleter)

			got, err := NewNoteDeleterTool(uow, deleter).Invoke(context.Background(), tt.args, testCaller)
			assert.Equal(t, tt.expectedErr, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
