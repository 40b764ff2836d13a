package difficulty

// Default cost weights for the built-in model. A bare single-digit
// step costs baseCost; each decimal carry or borrow adds its weight,
// and a two-digit operand adds a flat surcharge. The absolute scale is
// arbitrary — only the ordering it induces matters.
const (
	baseCost       = 1.0
	carryWeight    = 1.5
	borrowWeight   = 2.0
	wideOperandFee = 0.5
)

// Default returns the built-in carry/borrow model.
//
// Heuristic: column arithmetic is easy until digits interact. Adding
// gets harder with every decimal carry, subtracting with every borrow
// (borrows weigh more — regrouping downwards trips students up more
// often), and handling a two-digit operand costs a little extra
// regardless. Replace either StepFunc to tune the ranking.
func Default() Model {
	return Model{Add: addStep, Sub: subStep}
}

func addStep(running, operand int) float64 {
	cost := baseCost + carryWeight*float64(carryCount(running, operand))
	if operand >= 10 {
		cost += wideOperandFee
	}

	return cost
}

func subStep(running, operand int) float64 {
	cost := baseCost + borrowWeight*float64(borrowCount(running, operand))
	if operand >= 10 {
		cost += wideOperandFee
	}

	return cost
}

// carryCount returns how many decimal columns carry when adding a and b.
// Complexity: O(digits).
func carryCount(a, b int) int {
	count := 0
	carry := 0
	for a > 0 || b > 0 {
		sum := a%10 + b%10 + carry
		if sum >= 10 {
			count++
			carry = 1
		} else {
			carry = 0
		}
		a /= 10
		b /= 10
	}

	return count
}

// borrowCount returns how many decimal columns borrow when computing
// a - b for a >= b. Callers outside that domain get the borrow count
// of the digitwise scan, still deterministic and non-negative.
// Complexity: O(digits).
func borrowCount(a, b int) int {
	count := 0
	borrow := 0
	for a > 0 || b > 0 {
		d := a%10 - b%10 - borrow
		if d < 0 {
			count++
			borrow = 1
		} else {
			borrow = 0
		}
		a /= 10
		b /= 10
	}

	return count
}
