package game

import "testing"

func testStreet(t *testing.T, index int, price int, buildCost int) *Square {
	t.Helper()
	sq, err := NewStreetSquare(index, "Street", price, []int{0, 10, 20, 30, 40, 50}, buildCost)
	if err != nil {
		t.Fatal(err)
	}
	return sq
}

func testEconomy(t *testing.T) *Economy {
	t.Helper()
	bank, err := NewBank(1_000_000)
	if err != nil {
		t.Fatal(err)
	}
	economy, err := NewEconomy(bank)
	if err != nil {
		t.Fatal(err)
	}
	return economy
}

func TestBuyWithSufficientBalance(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 200, 100)

	if !economy.AttemptBuy(p, prop) {
		t.Fatal("buy should succeed with sufficient balance")
	}
	if p.Money() != 300 {
		t.Errorf("money = %d, want 300", p.Money())
	}
	if prop.Owner() != p {
		t.Error("buyer should own the property")
	}
	if !p.Owns(prop) {
		t.Error("property should be in buyer's holdings")
	}
}

func TestBuyFailsWithInsufficientBalance(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 800, 100)

	if economy.AttemptBuy(p, prop) {
		t.Fatal("buy should fail without balance")
	}
	if p.Money() != 500 || prop.HasOwner() || p.Owns(prop) {
		t.Error("failed buy must not change state")
	}
}

func TestBuyFailsWhenAlreadyOwned(t *testing.T) {
	economy := testEconomy(t)
	p1 := NewPlayer("p1", "Alice", "red", 500)
	p2 := NewPlayer("p2", "Bob", "blue", 500)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(p2, prop)

	if economy.AttemptBuy(p1, prop) {
		t.Fatal("buy should fail for owned property")
	}
	if prop.Owner() != p2 {
		t.Error("owner must stay the original buyer")
	}
	if p1.Money() != 500 {
		t.Error("rejected buyer's balance must not change")
	}
}

func TestStreetRentByLevel(t *testing.T) {
	economy := testEconomy(t)
	owner := NewPlayer("p2", "Bob", "blue", 500)
	visitor := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(owner, prop)
	prop.buildOne() // 1 house, rent 10

	if err := economy.ChargeRent(visitor, prop, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	if visitor.Money() != 490 {
		t.Errorf("visitor money = %d, want 490", visitor.Money())
	}
	if owner.Money() != 310 { // 500 - 200 price + 10 rent
		t.Errorf("owner money = %d, want 310", owner.Money())
	}
}

func TestCompanyRentUsesDiceSum(t *testing.T) {
	economy := testEconomy(t)
	owner := NewPlayer("p2", "Bob", "blue", 500)
	visitor := NewPlayer("p1", "Alice", "red", 500)
	company, err := NewCompanySquare(0, "Power", 150, 4)
	if err != nil {
		t.Fatal(err)
	}
	economy.AttemptBuy(owner, company)

	if err := economy.ChargeRent(visitor, company, FixedRoll(3, 4)); err != nil {
		t.Fatal(err)
	}
	if visitor.Money() != 472 { // 4 * 7 = 28
		t.Errorf("visitor money = %d, want 472", visitor.Money())
	}
}

func TestNoRentWithoutHouses(t *testing.T) {
	economy := testEconomy(t)
	owner := NewPlayer("p2", "Bob", "blue", 500)
	visitor := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(owner, prop)

	if err := economy.ChargeRent(visitor, prop, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	if visitor.Money() != 500 {
		t.Errorf("visitor money = %d, want 500 (zero baseline rent)", visitor.Money())
	}
}

func TestNoRentOnOwnProperty(t *testing.T) {
	economy := testEconomy(t)
	owner := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(owner, prop)
	prop.buildOne()

	if err := economy.ChargeRent(owner, prop, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	if owner.Money() != 300 {
		t.Errorf("owner money = %d, want 300", owner.Money())
	}
}

func TestNoRentWhenUnowned(t *testing.T) {
	economy := testEconomy(t)
	visitor := NewPlayer("p1", "Alice", "red", 500)
	prop := testStreet(t, 0, 200, 100)
	prop.buildOne()

	if err := economy.ChargeRent(visitor, prop, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	if visitor.Money() != 500 {
		t.Error("unowned property must not charge")
	}
}

func TestBuildIncrementsHousesThenHotel(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 2000)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(p, prop)

	for i := 1; i <= 4; i++ {
		if !economy.AttemptBuild(p, prop) {
			t.Fatalf("build %d should succeed", i)
		}
		if prop.Houses() != i {
			t.Fatalf("houses = %d, want %d", prop.Houses(), i)
		}
	}
	if prop.HasHotel() {
		t.Fatal("no hotel before the fifth build")
	}

	if !economy.AttemptBuild(p, prop) {
		t.Fatal("fifth build should convert to hotel")
	}
	if !prop.HasHotel() || prop.Houses() != 4 {
		t.Errorf("state = %d houses, hotel=%v; want 4 houses and hotel", prop.Houses(), prop.HasHotel())
	}

	money := p.Money()
	if economy.AttemptBuild(p, prop) {
		t.Fatal("building past a hotel must fail")
	}
	if p.Money() != money || !prop.HasHotel() || prop.Houses() != 4 {
		t.Error("failed build must not change state")
	}
}

func TestBuildFailsForNonOwner(t *testing.T) {
	economy := testEconomy(t)
	owner := NewPlayer("p1", "Alice", "red", 2000)
	other := NewPlayer("p2", "Bob", "blue", 2000)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(owner, prop)

	if economy.AttemptBuild(other, prop) {
		t.Fatal("build on someone else's street must fail")
	}
}

func TestBuildFailsWithoutFunds(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 250)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(p, prop) // leaves 50, build cost 100

	if economy.AttemptBuild(p, prop) {
		t.Fatal("build without funds must fail")
	}
	if prop.Houses() != 0 {
		t.Error("failed build must not add houses")
	}
}

func TestLiquidationInAcquisitionOrder(t *testing.T) {
	economy := testEconomy(t)
	debtor := NewPlayer("p1", "Alice", "red", 0)
	creditor := NewPlayer("p2", "Bob", "blue", 500)

	// Acquired first, liquidated first: invested 100 then 200.
	first := testStreet(t, 5, 100, 100)
	second := testStreet(t, 6, 200, 100)
	first.setOwner(debtor)
	debtor.addProperty(first)
	second.setOwner(debtor)
	debtor.addProperty(second)

	// Owes 250 with 0 cash: 90 + 180 = 270 covers it, no bankruptcy, and the
	// original payment still goes through afterwards.
	if err := economy.Transfer(debtor, creditor, 250); err != nil {
		t.Fatal(err)
	}
	if !debtor.Alive() {
		t.Fatal("debtor must survive a covering liquidation")
	}
	if debtor.Money() != 20 { // 0 + 90 + 180 - 250
		t.Errorf("debtor money = %d, want 20", debtor.Money())
	}
	if creditor.Money() != 750 {
		t.Errorf("creditor money = %d, want 750", creditor.Money())
	}
	if first.HasOwner() || second.HasOwner() {
		t.Error("liquidated properties must end unowned")
	}
	if len(debtor.Properties()) != 0 {
		t.Error("holdings must be empty after full liquidation")
	}
}

func TestLiquidationStopsOnceCovered(t *testing.T) {
	economy := testEconomy(t)
	debtor := NewPlayer("p1", "Alice", "red", 5)
	creditor := NewPlayer("p2", "Bob", "blue", 500)

	asset := testStreet(t, 5, 100, 100)
	asset.setOwner(debtor)
	debtor.addProperty(asset)

	keeper := testStreet(t, 6, 300, 100)
	keeper.setOwner(debtor)
	debtor.addProperty(keeper)

	rentProp := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(creditor, rentProp)
	rentProp.buildOne() // rent 10

	if err := economy.ChargeRent(debtor, rentProp, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	// 5 + 90 - 10 = 85; the second asset stays held.
	if debtor.Money() != 85 {
		t.Errorf("debtor money = %d, want 85", debtor.Money())
	}
	if creditor.Money() != 310 {
		t.Errorf("creditor money = %d, want 310", creditor.Money())
	}
	if !debtor.Owns(keeper) || keeper.Owner() != debtor {
		t.Error("liquidation past the shortfall must stop")
	}
	if asset.HasOwner() || debtor.Owns(asset) {
		t.Error("first asset must be gone")
	}
}

func TestBankruptcyWhenLiquidationFallsShort(t *testing.T) {
	economy := testEconomy(t)
	debtor := NewPlayer("p1", "Carol", "gray", 5)
	creditor := NewPlayer("p2", "Dave", "yellow", 500)

	if err := economy.Transfer(debtor, creditor, 50); err != nil {
		t.Fatal(err)
	}
	if debtor.Alive() {
		t.Fatal("debtor must go bankrupt")
	}
	if len(debtor.Properties()) != 0 {
		t.Error("bankrupt holdings must be empty")
	}
	if creditor.Money() != 500 {
		t.Errorf("creditor money = %d, want 500 (no payment on bankruptcy)", creditor.Money())
	}
	if debtor.Money() != 5 {
		t.Errorf("debtor money = %d, want 5 (triggering payment not made)", debtor.Money())
	}
}

func TestBankruptcyDuringRentLeavesOwnerUnpaid(t *testing.T) {
	economy := testEconomy(t)
	debtor := NewPlayer("p1", "Carol", "gray", 5)
	owner := NewPlayer("p2", "Dave", "yellow", 500)

	low1 := testStreet(t, 7, 10, 10)
	low2 := testStreet(t, 8, 10, 10)
	low1.setOwner(debtor)
	debtor.addProperty(low1)
	low2.setOwner(debtor)
	debtor.addProperty(low2)

	rentProp := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(owner, rentProp)
	for i := 0; i < 5; i++ {
		rentProp.buildOne()
	}

	// Hotel rent is 50; 5 + 9 + 9 = 23 cannot cover it.
	if err := economy.ChargeRent(debtor, rentProp, FixedRoll(2, 3)); err != nil {
		t.Fatal(err)
	}
	if debtor.Alive() {
		t.Fatal("debtor must go bankrupt")
	}
	if owner.Money() != 300 { // 500 - 200 price, no rent received
		t.Errorf("owner money = %d, want 300", owner.Money())
	}
	if low1.HasOwner() || low2.HasOwner() {
		t.Error("bankrupt player's titles must be cleared")
	}
}

func TestBuyBackPaysNinetyPercentAndResetsState(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 1000)
	prop := testStreet(t, 0, 200, 100)
	economy.AttemptBuy(p, prop)
	economy.AttemptBuild(p, prop)
	economy.AttemptBuild(p, prop) // invested 200 + 2*100 = 400

	received, err := economy.BuyBack(p, prop)
	if err != nil {
		t.Fatal(err)
	}
	if received != 360 {
		t.Errorf("received = %d, want 360", received)
	}
	if prop.HasOwner() || prop.Houses() != 0 || prop.HasHotel() {
		t.Error("buy-back must clear ownership and construction")
	}
	if p.Owns(prop) {
		t.Error("buy-back must remove the holding")
	}
}

func TestCompanyInvestmentIsPriceOnly(t *testing.T) {
	economy := testEconomy(t)
	p := NewPlayer("p1", "Alice", "red", 1000)
	company, _ := NewCompanySquare(0, "Power", 150, 4)
	economy.AttemptBuy(p, company)

	received, err := economy.BuyBack(p, company)
	if err != nil {
		t.Fatal(err)
	}
	if received != 135 {
		t.Errorf("received = %d, want 135", received)
	}
}
