// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/rpg-memento-editor/internal/clients/catalog/mock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/entities/memento"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup"
	gamesetupmock "github.com/KirkDiggler/rpg-memento-editor/internal/repositories/gamesetup/mock"
	"github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights"
	highlightsmock "github.com/KirkDiggler/rpg-memento-editor/internal/repositories/highlights/mock"
)

// ExpectCatalog makes the catalog client serve fresh copies of the result
// of build on every call
func ExpectCatalog(mockClient *catalogmock.MockClient, build func() ([]*memento.Item, []*memento.Slot)) {
	mockClient.EXPECT().
		ListItems(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*memento.Item, error) {
			items, _ := build()
			return items, nil
		}).
		AnyTimes()

	mockClient.EXPECT().
		ListSlots(gomock.Any()).
		DoAndReturn(func(context.Context) ([]*memento.Slot, error) {
			_, slots := build()
			return slots, nil
		}).
		AnyTimes()
}

// ExpectHighlightLoad sets up a single highlight load returning ids
func ExpectHighlightLoad(
	ctx context.Context, mockRepo *highlightsmock.MockRepository,
	playerID string, ids []string,
) *gomock.Call {
	if ids == nil {
		ids = []string{}
	}
	return mockRepo.EXPECT().
		Load(ctx, highlights.LoadInput{PlayerID: playerID}).
		Return(&highlights.LoadOutput{ItemIDs: ids}, nil)
}

// ExpectSlotCommits expects one SetParameter per key/value pair, in order
func ExpectSlotCommits(
	ctx context.Context, mockRepo *gamesetupmock.MockRepository,
	playerID string, params [][2]string,
) {
	calls := make([]any, 0, len(params))
	for _, kv := range params {
		calls = append(calls, mockRepo.EXPECT().
			SetParameter(ctx, gamesetup.SetParameterInput{
				PlayerID: playerID,
				Key:      kv[0],
				Value:    kv[1],
			}).
			Return(&gamesetup.SetParameterOutput{}, nil))
	}
	gomock.InOrder(calls...)
}
