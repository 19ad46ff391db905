package main

import (
	"fmt"

	"ladder-exchange/domain"
	"ladder-exchange/matching"
)

func main() {
	sink := &domain.RecordingSink{}
	engine := matching.NewEngine(matching.DefaultConfig(), sink)

	fmt.Printf("Matching engine ready, band [%d, %d]\n",
		engine.Band().MinTick, engine.Band().MaxTick)

	// Seed a resting ask, then cross it partially with a buy.
	engine.Submit(domain.Order{ID: 1, Side: domain.SideSell, Price: 1000, Qty: 10})
	fmt.Println("Submitted sell: 10 @ 1000")

	result := engine.Submit(domain.Order{ID: 2, Side: domain.SideBuy, Price: 1005, Qty: 6})
	fmt.Printf("Submitted buy: 6 @ 1005 -> %s\n", result)

	for _, t := range sink.Trades {
		fmt.Printf("Trade executed: qty %d @ %d, taker=%d, maker=%d\n",
			t.Qty, t.Price, t.TakerID, t.MakerID)
	}

	if ask, ok := engine.BestAsk(); ok {
		fmt.Printf("Best ask after cross: %d\n", ask)
	}
	fmt.Printf("Live orders: %d\n", engine.LiveOrders())

	// Replace the maker remainder to a new price; nothing rests to cross
	// against it, so it rests fully.
	rr := engine.Replace(1, 1010, 8)
	fmt.Printf("Replace id=1 -> success=%v add=%s\n", rr.Success, rr.Add)

	for _, level := range engine.Depth(domain.SideSell, 5) {
		fmt.Printf("Ask level: price %d, qty %d, orders %d\n",
			level.Price, level.Quantity, level.Orders)
	}
}
