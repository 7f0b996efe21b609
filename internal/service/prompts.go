package service

import "fmt"

// The instruction texts below are sent byte for byte, missing separators
// included; replies were tuned against exactly these prompts.
const classificationInstruction = "Classify the following query into one of these categories based on its content: " +
	"[Address] for street addresses or specific locations, " +
	"[Category] for general types of places like parks or hospitals, including queries with 'nearby' or 'close to current location'," +
	"[Brand] for queries mentioning specific brand names like Starbucks, McDonald's, etc., " +
	"[Quantity] for queries specifying any number of places. Any input query where the user has specified the quantity of places then it comes under this category even if it is a brand, " +
	"[Distance] for queries mentioning any specific distance (e.g., 1 km), which should take precedence over any other category, and" +
	"[Location with Reference] only for queries that mention two distinct locations, like 'near Amsterdam Central Station' or 'close to Vondelpark'." +
	"Ensure that only one category is returned at a time, based on the content. " +
	"Return only the category name in brackets and nothing else."

// extractionInstructions holds one instruction per known category.
var extractionInstructions = map[Category]string{
	CategoryAddress: "Correct any spelling mistakes, extract the address from the following query, " +
		"and format it into this universal address format: [Street Address, Locality (if applicable), " +
		"City, Administrative Area (if applicable), Postal Code, Country]. " +
		"Do not include any speculative information, explanations, or assumptions. " +
		"Return only the formatted address in square brackets inside [] and nothing else.",

	CategoryCategory: "Analyze the following query to extract the type of place where the user intends to go. " +
		"Correct any spelling mistakes if necessary, but do not include any commentary or corrections in the response. " +
		"Return only the most relevant place in a maximum of 1 or 2 words in square brackets, appropriate for sending to geocoder. " +
		"Only provide the place name in square brackets, without any explanations, assumptions, or unnecessary information.",

	CategoryBrand: "Analyze the following query to extract the specific brand name where the user intends to go. " +
		"Correct any spelling mistakes if necessary, but do not include any commentary or corrections in the response. " +
		"Return only the brand name in square brackets, appropriate for sending to a geocoder. " +
		"Sometimes some brands are into multiple business, so if the query has mentioned about the intended place to go for that brand, " +
		"only in that case mention the brand name followed by the intended place to go" +
		"Only provide the brand name in square brackets, with no additional information.",

	CategoryQuantity: "Analyze the query to extract both the type of place where the user intends to go and the number of places the user is requesting. " +
		"Correct any spelling mistakes if necessary " +
		"Return only the most relevant place in a maximum of 1 or 2 words, appropriate for sending to geocoder. " +
		"Return the output in this format: [(Name of Place), (Quantity)]. For example, if the user is asking for 3 parks, return '[(Park), (3)]'. " +
		"Only provide the name of the place and the quantity in square brackets, with no additional information in the response.",

	CategoryDistance: "Analyze the query to extract both the type of place where the user intends to go in the sense that the place name can be sent to a geocoder, and the distance, including the unit. " +
		"Correct any spelling mistakes if necessary but do not include any commentary or corrections in the response. " +
		"Return the output in this format: [(Name of Place), (Distance with Unit)]. " +
		"For example, if the user is asking for restaurants within 10 km, return '[(Restaurant), (10 km)]'. " +
		"Only provide the name of the place and the distance in square brackets, with no additional information in the response.",

	CategoryLocationWithReference: "Analyze the query to extract two locations: the starting location (where the user intends to go) and the reference location. " +
		"Correct any spelling mistakes if necessary but do not include any commentary or corrections in the response. " +
		"Return the output in this format: [(Start Location), (End Location)]. " +
		"For example, if the user is asking for hotels near Schiphol Airport, return '[(Hotel), (Schiphol Airport)]'. " +
		"Only provide the start location and reference location in square brackets, with no additional information in the response.",
}

func buildPrompt(instruction, query string) string {
	return fmt.Sprintf("%s Query: '%s'", instruction, query)
}

// ClassificationPrompt returns the full classifier prompt for query.
func ClassificationPrompt(query string) string {
	return buildPrompt(classificationInstruction, query)
}

// ExtractionPrompt returns the extraction prompt for category c, or false when c is not a known category.
func ExtractionPrompt(c Category, query string) (string, bool) {
	instruction, ok := extractionInstructions[c]
	if !ok {
		return "", false
	}
	return buildPrompt(instruction, query), true
}
