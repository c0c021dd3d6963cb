package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	chttp "mercure/common/http"
	"mercure/hub_client"
	"mercure/hub_common/auth"
	"mercure/hub_common/hub_url"
	"mercure/hub_common/topic"
	"mercure/hub_common/topic_selector"
)

func main() {
	hubUrlArg := flag.String("hub", "http://localhost:3000/.well-known/mercure", "hub URL (must end with the well-known path)")
	topicArg := flag.String("topic", "", "topic IRI of the update")
	dataArg := flag.String("data", "", "update payload")
	privateArg := flag.Bool("private", false, "mark the update as private")
	verboseArg := flag.Bool("verbose", false, "log client activity")
	flag.Parse()

	secretKey := os.Getenv("MERCURE_JWT_SECRET")
	if secretKey == "" {
		fmt.Fprintln(os.Stderr, "MERCURE_JWT_SECRET is not set")
		os.Exit(1)
	}
	if *topicArg == "" {
		fmt.Fprintln(os.Stderr, "-topic is required")
		os.Exit(1)
	}

	hubUrl, err := hub_url.FromString(*hubUrlArg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	topicUrl, parseErr := url.Parse(*topicArg)
	if parseErr != nil {
		fmt.Fprintln(os.Stderr, parseErr)
		os.Exit(1)
	}

	secret := auth.NewSecretFromString(secretKey)
	defer secret.Wipe()
	publisherJwt, authErr := auth.NewPublisherJwt(secret, []topic_selector.TopicSelector{topic_selector.Wildcard()})
	if authErr != nil {
		fmt.Fprintln(os.Stderr, authErr)
		os.Exit(1)
	}

	client := hub_client.NewClient(chttp.NewHTTPClient(4, 64, 10), hubUrl, publisherJwt)
	client.Verbose(*verboseArg)

	var data *string
	if *dataArg != "" {
		data = dataArg
	}
	privacy := hub_client.PrivacyPublic
	if *privateArg {
		privacy = hub_client.PrivacyPrivate
	}

	updateId, publishErr := client.PublishUpdate(context.Background(), topic.NewTopic(topicUrl), data, privacy)
	if publishErr != nil {
		fmt.Fprintln(os.Stderr, publishErr)
		os.Exit(1)
	}
	fmt.Println(updateId)
}
