// Package ai holds the prompts sent to the generative model and the shapes
// of the replies it is asked to produce.
package ai

import (
	"fmt"
	"strings"
)

const cvTemplate = `{
  "skills": [],
  "education": [
    {"institution": "", "degree": "", "fieldOfStudy": "", "startYear": 0, "endYear": 0, "grade": ""}
  ],
  "projects": [
    {"title": "", "description": "", "techStack": [], "link": "", "startDate": "", "endDate": "", "isOngoing": false}
  ],
  "languages": [
    {"name": "", "proficiency": "Basic"}
  ],
  "address": {"country": "", "state": "", "city": "", "street": "", "postalCode": ""},
  "bio": "",
  "headline": "",
  "targetRoles": [],
  "experienceLevel": "Fresher",
  "availability": "open_to_work"
}`

const compareTemplate = `{
  "matchScore": 0,
  "skillMatch": [],
  "missingSkills": [],
  "experienceNote": "",
  "strengths": [],
  "weaknesses": [],
  "fitSummary": "",
  "charts": {
    "skillsRadar": {"labels": [], "user": [], "job": []},
    "gapBar": {"labels": [], "values": []}
  }
}`

const roadmapTemplate = `{
  "jobTitle": "",
  "targetRole": "",
  "totalDurationWeeks": 0,
  "overview": {"summary": "", "skillsToDevelop": [], "technologiesToLearn": [], "prerequisites": []},
  "phases": [
    {"phaseNumber": 1, "title": "", "startWeek": 1, "endWeek": 4, "topics": [], "technologies": [], "projectIdeas": [], "expectedOutcome": ""}
  ],
  "applicationGuidance": {"recommendedStartWeek": 0, "whatToHaveReady": [], "howToApply": []},
  "extraRecommendations": {
    "learningResources": [{"title": "", "type": "", "platform": "", "url": ""}],
    "commonMistakes": [],
    "motivation": ""
  }
}`

const jsonOnly = "Return ONLY valid JSON. No explanation text, no markdown, no commentary."

func CVPrompt(cvText string) string {
	return fmt.Sprintf(`You are a strict CV to JSON parser.
Convert the CV text into a JSON object that matches the template below exactly.

Rules:
1. %s
2. Do not rename fields and do not add fields.
3. Missing information becomes "" or [] or 0. Never null.
4. experienceLevel is one of Fresher, Junior, Mid, Senior.
5. availability is one of student, employed, unemployed, looking, open_to_work, not_looking.
6. proficiency is one of Basic, Conversational, Fluent, Native.

Template:
%s

<<<CV_TEXT_START>>>
%s
<<<CV_TEXT_END>>>`, jsonOnly, cvTemplate, cvText)
}

func ComparePrompt(jobJSON, profileJSON string) string {
	return fmt.Sprintf(`You are a job comparison engine. Compare the job posting with the user profile.

--- JOB DATA ---
%s

--- USER DATA ---
%s

Highlight strengths and weaknesses and quantify skill gaps. matchScore is 0 to 100.

%s
%s`, jobJSON, profileJSON, jsonOnly, compareTemplate)
}

func RoadmapPrompt(profileJSON, targetJob, timeframe string) string {
	if strings.TrimSpace(timeframe) == "" {
		timeframe = "as soon as possible"
	}
	return fmt.Sprintf(`You are a career roadmap generator.

USER PROFILE:
%s

TARGET JOB:
%s

Timeframe to achieve the goal: %s

Generate a tailored learning roadmap for this user to reach the job.
Rules:
- Divide the roadmap into 3 to 6 phases numbered from 1.
- Weeks are sequential and do not overlap.
- Every phase has topics, technologies, project ideas and an expected outcome.
- Pick the week the user should start applying.

%s
%s`, profileJSON, targetJob, timeframe, jsonOnly, roadmapTemplate)
}

const chatSystem = `You are a professional career assistant giving clear, practical career advice
focused on youth employment. Say when you are suggesting rather than guaranteeing an outcome.

Output rules: plain text only, no markdown, no lists, no labels, at most 200 characters, friendly tone.`

func ChatPrompt(profileJSON, conversationJSON string) string {
	return fmt.Sprintf(`%s

--- USER PROFILE ---
%s

--- CONVERSATION ---
%s

Reply with one short helpful message of at most 4 sentences. Return only the text.`, chatSystem, profileJSON, conversationJSON)
}
