package spammer

import (
	"fmt"
	"math/rand"
)

var (
	adjectives = []string{"Quick", "Lazy", "Sleepy", "Noisy", "Hungry"}
	nouns      = []string{"Fox", "Dog", "Cat", "Mouse", "Bear"}
)

// GenerateRandomName combines a random adjective, a random noun and a
// random number below 1000. Names are not unique; the contract accepts
// duplicates.
func GenerateRandomName() string {
	adjective := adjectives[rand.Intn(len(adjectives))]
	noun := nouns[rand.Intn(len(nouns))]
	number := rand.Intn(1000)

	return fmt.Sprintf("%s%s%d", adjective, noun, number)
}
