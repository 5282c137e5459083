package tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/domain"
	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/usecases"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testCaller = domain.Identity{UserID: uuid.MustParse("22222222-0000-4000-8000-000000000002"), Email: "a@example.com"}
	testNoteID = uuid.MustParse("11111111-0000-4000-8000-000000000001")
	testTime   = time.Date(2026, 1, 27, 10, 30, 0, 0, time.UTC)
)

func runInUow(uow *domain.MockUnitOfWork) {
	uow.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(uow domain.UnitOfWork) error) error {
			return fn(uow)
		})
}

func TestNoteCreatorTool_Invoke(t *testing.T) {
	tests := map[string]struct {
		args            domain.ToolArguments
		setExpectations func(uow *domain.MockUnitOfWork, creator *usecases.MockNoteCreator)
		expected        domain.ToolResult
		expectErr       bool
	}{
		"explicit-title": {
			args: domain.ToolArguments{"content": "Milch kaufen", "title": "Einkauf"},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockNoteCreator) {
				runInUow(uow)
				creator.EXPECT().Create(mock.Anything, uow, testCaller.UserID, "Einkauf", "Milch kaufen").
					Return(domain.Note{ID: testNoteID, Title: "Einkauf"}, nil)
			},
			expected: domain.NewToolSuccess(`Note "Einkauf" saved (id 11111111-0000-4000-8000-000000000001).`),
		},
		"derived-title": {
			args: domain.ToolArguments{"content": "Zahnarzt anrufen\nMontag früh"},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockNoteCreator) {
				runInUow(uow)
				creator.EXPECT().Create(mock.Anything, uow, testCaller.UserID, "Zahnarzt anrufen", "Zahnarzt anrufen\nMontag früh").
					Return(domain.Note{ID: testNoteID, Title: "Zahnarzt anrufen"}, nil)
			},
			expected: domain.NewToolSuccess(`Note "Zahnarzt anrufen" saved (id 11111111-0000-4000-8000-000000000001).`),
		},
		"creator-error": {
			args: domain.ToolArguments{"content": "x"},
			setExpectations: func(uow *domain.MockUnitOfWork, creator *usecases.MockNoteCreator) {
				runInUow(uow)
				creator.EXPECT().Create(mock.Anything, uow, mock.Anything, mock.Anything, mock.Anything).
					Return(domain.Note{}, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain.NewMockUnitOfWork(t)
			creator := usecases.NewMockNoteCreator(t)
			tt.setExpectations(uow, creator)

			got, err := NewNoteCreatorTool(uow, creator).Invoke(context.Background(), tt.args, testCaller)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNoteCreatorTool_Descriptor(t *testing.T) {
	d := NewNoteCreatorTool(nil, nil).Descriptor()
	assert.Equal(t, "create_note", d.Name)

	content, ok := d.Parameter("content")
	require.True(t, ok)
	assert.True(t, content.Required)

	title, ok := d.Parameter("title")
	require.True(t, ok)
	assert.False(t, title.Required)
}
