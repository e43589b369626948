package commands

import (
	"context"

	"compras/internal/core/domain/model/order"
	"compras/internal/core/domain/model/personalization"
	"compras/internal/core/ports"
)

// copyPersonalizations deep-copies the personalizations of a cart line onto
// the order line created from it: header row, every layer, and the order
// item's per-side references. When the cart line has none and a draft-item
// hint was given, the draft's personalizations are copied instead.
//
// For each copied side whose layer stack resolves to a photo file, the
// order's image mapping is upserted, which also reparents the file to the
// order. A line without personalizations is a no-op; orders whose image came
// through a direct-upload path look exactly like that.
func copyPersonalizations(
	ctx context.Context,
	persRepo ports.PersonalizationRepository,
	orderRepo ports.OrderRepository,
	fromCartItemID int64,
	item *order.OrderItem,
	fallbackDraftItemID *int64,
) error {
	sources, err := persRepo.GetByOwner(ctx, personalization.OwnerCartItem(fromCartItemID))
	if err != nil {
		return err
	}
	if len(sources) == 0 && fallbackDraftItemID != nil {
		sources, err = persRepo.GetByOwner(ctx, personalization.OwnerCartItem(*fallbackDraftItemID))
		if err != nil {
			return err
		}
	}
	if len(sources) == 0 {
		return nil
	}

	owner := personalization.OwnerOrderItem(item.ID())
	copiedBySide := make(map[personalization.Side]*personalization.Personalization, 2)

	for _, src := range sources {
		copied, err := src.CopyTo(owner)
		if err != nil {
			return err
		}
		if err = persRepo.Add(ctx, copied); err != nil {
			return err
		}
		// First personalization per side wins, matching the side lookup
		// order of the copy query.
		if _, taken := copiedBySide[copied.Side()]; !taken {
			copiedBySide[copied.Side()] = copied
		}
	}

	for _, side := range personalization.Sides() {
		copied, ok := copiedBySide[side]
		if !ok {
			continue
		}
		if err = item.SetPersonalization(side, copied.ID()); err != nil {
			return err
		}
		if fileID := copied.PhotoFileID(); fileID != nil {
			if err = orderRepo.UpsertImage(ctx, item.OrderID(), side, *fileID); err != nil {
				return err
			}
		}
	}

	return orderRepo.UpdateItem(ctx, item)
}
