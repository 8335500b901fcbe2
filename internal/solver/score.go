package solver

// Score returns the feedback a player would see for guess against answer.
// Both words must be normalized (uppercase, WordLen letters).
//
// Pass 1 marks exact matches Correct and counts the remaining answer letters.
// Pass 2 marks a non-correct guess letter Present while unused copies remain,
// otherwise Absent. This handles repeated letters in both words.
func Score(answer, guess string) Feedback {
	var fb Feedback
	var counts [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			fb[i] = Correct
		} else {
			counts[idx(answer[i])]++
		}
	}

	for i := 0; i < WordLen; i++ {
		if fb[i] == Correct {
			continue
		}
		j := idx(guess[i])
		if counts[j] > 0 {
			fb[i] = Present
			counts[j]--
		} else {
			fb[i] = Absent
		}
	}
	return fb
}
