package constant

// Fixed compliance checklists per modality. These steer the first-pass
// generation call; a request may add its own guideline text on top.

const VideoGuidelines = `
o Ensure no overly technical or medical jargon is used that could confuse viewers.

o Verify that the language aligns with common understanding, avoiding complex terms without explanation.

o Check that the volume is consistent and not drowned out by background elements.

o Ensure the speaker articulates clearly, with pacing that allows for easy comprehension, typically not faster than the rest of the ad.

o Verify that the text matches the audio, either by including key phrases or the full transcript.

o Ensure the text is visible for long enough (e.g., not flashing briefly), considering the average ad length of 30-60 seconds (see Response 19, Footnote 7: DTC Ad Length Study).

o Ensure the text is placed in a prominent, unobstructed area of the screen, not overlapping with other visuals.

o Verify sufficient contrast (e.g., white text on dark background or vice versa) for visibility.

o Check that font size is large enough (typically at least 12-point for standard viewing distances) and style is legible (e.g., sans-serif fonts like Arial or Helvetica).

o Ensure no background music or sounds overlap with the major statement that could mask the audio.

o Verify no rapid scene changes or animations occur during the statement.

o Check that other text or graphics do not compete for attention, ensuring the major statement remains the focus.

o Ensure the presentation is engaging but does not downplay the importance of the major statement.

o Verify the ad conveys a truthful, non-misleading net impression, balancing benefits and risks.
`

const InstaGuidelines = `
1. Make sure the post follows Instagram's community guidelines. Avoid prohibited content.
2. Only share health claims that are true and not misleading.
3. Write clear, simple captions without too much jargon.
4. Use 5-10 relevant hashtags. Avoid overloading the post with hashtags.
5. Show only real and honest testimonials or results.
6. Clearly mark sponsored posts with #ad or #sponsored.
7. Use high-quality images that fit Instagram's feed (1:1 or 4:5 size).
8. Keep text on images minimal and easy to read on mobile.
9. Add image descriptions when needed for accessibility.
10. Give clear calls-to-action without being too pushy.
11. Make sure links work and go to trusted sites.
12. Follow any specific rules for your industry (e.g., pharma, finance).
`

const WebsiteGuidelines = `
1. Clearly separate content for healthcare professionals and the public, with access controls if needed.
2. Ensure all medical claims follow regulatory guidelines and include proper disclaimers.
3. Show safety info, black box warnings, and contraindications clearly for prescription drugs.
4. Provide easy ways for users to report adverse events.
5. Include clear intended use statements for all medical devices and products.
6. Accurately present clinical data with references to peer-reviewed sources.
7. Use patient testimonials only if they follow regulations and include disclaimers.
8. Keep educational content separate from promotional material as required.
9. Protect patient data according to privacy standards like HIPAA.
10. Do not misuse terms like "safe," "effective," or "guaranteed."
`
