package client_test

import (
	"os"
	"path"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/querylab/queryjob/internal/client"
)

var _ = Describe("Config", func() {
	var configTmpFolder string

	BeforeEach(func() {
		var err error
		configTmpFolder, err = os.MkdirTemp("", "queryjob-config")
		Expect(err).To(BeNil())
	})
	AfterEach(func() {
		os.RemoveAll(configTmpFolder)
	})

	It("round-trips through a config file", func() {
		filename := path.Join(configTmpFolder, "nested", "client.yaml")
		err := client.WriteConfig(filename, "https://queries.example.com")
		Expect(err).To(BeNil())

		config, err := client.ParseConfigFile(filename)
		Expect(err).To(BeNil())
		Expect(config.Service.Server).To(Equal("https://queries.example.com"))
	})

	It("rejects a config without a server", func() {
		config := client.NewDefault()
		Expect(config.Validate()).To(HaveOccurred())
	})

	It("rejects a server with an unsupported scheme", func() {
		config := client.NewDefault()
		config.Service.Server = "ftp://queries.example.com"
		err := config.Validate()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("scheme"))
	})

	It("accepts http and https servers", func() {
		for _, server := range []string{"http://localhost:8080", "https://queries.example.com"} {
			config := client.NewDefault()
			config.Service.Server = server
			Expect(config.Validate()).To(BeNil())
		}
	})

	It("fails on a missing config file", func() {
		_, err := client.ParseConfigFile(path.Join(configTmpFolder, "absent.yaml"))
		Expect(err).To(HaveOccurred())
	})
})
