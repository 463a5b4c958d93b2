// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 GiveLink Contributors

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a API base URL, e.g. http://host/donationApp_restapi/api
//	-d local store DSN (SQLite file path or :memory:)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-email-url transactional email send endpoint
//	-email-service transactional email service id
//	-email-contact-template template id for the contact form
//	-email-feedback-template template id for the feedback form
//	-email-key transactional email public key
func ParseFlags() *StructuredConfig {
	var apiBaseURL string
	var localDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var emailURL string
	var emailService string
	var emailContactTemplate string
	var emailFeedbackTemplate string
	var emailKey string

	flag.StringVar(&apiBaseURL, "a", "", "API base URL")
	flag.StringVar(&localDSN, "d", "", "Local store DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&emailURL, "email-url", "", "Transactional email send endpoint")
	flag.StringVar(&emailService, "email-service", "", "Transactional email service id")
	flag.StringVar(&emailContactTemplate, "email-contact-template", "", "Contact form template id")
	flag.StringVar(&emailFeedbackTemplate, "email-feedback-template", "", "Feedback form template id")
	flag.StringVar(&emailKey, "email-key", "", "Transactional email public key")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			APIBaseURL:     apiBaseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: localDSN,
			},
		},
		Email: Email{
			BaseURL:          emailURL,
			ServiceID:        emailService,
			ContactTemplate:  emailContactTemplate,
			FeedbackTemplate: emailFeedbackTemplate,
			PublicKey:        emailKey,
		},
		JSONFilePath: jsonConfigPath,
	}
}
