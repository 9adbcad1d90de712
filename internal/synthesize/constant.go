package synthesize

// Log prefixes
const (
	LogPrefixSynthesize = "internal.synthesize.Synthesize"
)

// NoInformationMessage is returned without calling the generator when nothing was resolved.
const NoInformationMessage = "No repair information was found."

// Instructions
const (
	InstructionGuide = `You are a repair assistant.
You MUST strictly follow the official iFixit guide below.
Reproduce the official steps in order. Do NOT invent steps, tools or parts.
Format the answer in clean Markdown:
- Use # for the title
- Use ## Steps
- Number each step
- Mention "(Images available)" when a step has images`

	InstructionWeb = `You are a repair assistant.
This information comes from community web sources.
Summarize safely and conservatively.
Do NOT invent precise disassembly steps.
Use general repair advice only and recommend professional help for risky work such as batteries or mains power.`

	promptTemplate = `%s

User question:
%s

Tool data:
%s

Produce the best possible answer for the user's question.`
)
