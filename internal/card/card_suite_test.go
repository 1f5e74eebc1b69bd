package card_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCard(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Card Suite")
}
